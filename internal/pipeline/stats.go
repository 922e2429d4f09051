package pipeline

// Stats summarizes one run.
type Stats struct {
	Discovered int // Image files found in the input directory.
	Skipped    int // Files dropped because they could not be decoded.
	Spreads    int // Source images split into two pages.
	Cropped    int // Pages whose margins were trimmed.
	Resized    int // Pages scaled to the target resolution.
	Pages      int // Pages written, excluding the cover.
	Entries    int // Archive entries written, including the cover.
}
