package imaging

import (
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// createFramedPage creates a white page with a black block covering the
// columns [left, right) and rows [top, bottom).
func createFramedPage(width, height, left, right, top, bottom int) *image.RGBA {
	img := createInMemoryImage(width, height, white)
	fillRect(img, left, top, right, bottom, black)
	return img
}

func TestMostFrequent(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		fallback int
		want     int
	}{
		{"empty uses fallback", nil, 7, 7},
		{"single", []int{3}, 0, 3},
		{"clear winner", []int{1, 5, 5, 2, 5, 1}, 0, 5},
		{"tie goes to first seen", []int{4, 9, 9, 4}, 0, 4},
		{"tie goes to first seen reversed", []int{9, 4, 4, 9}, 0, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MostFrequent(tt.values, tt.fallback); got != tt.want {
				t.Errorf("MostFrequent(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestDetectMargins_CenteredBlock(t *testing.T) {
	img := createFramedPage(100, 40, 20, 70, 10, 30)

	left, right := DetectMargins(img, 0)
	if left != 20 || right != 70 {
		t.Errorf("DetectMargins = [%d, %d), want [20, 70)", left, right)
	}
}

func TestDetectMargins_BlankPage(t *testing.T) {
	img := createInMemoryImage(101, 50, white)

	left, right := DetectMargins(img, 0)
	if left != 50 || right != 50 {
		t.Errorf("DetectMargins = [%d, %d), want sentinel [50, 50)", left, right)
	}
}

func TestDetectMargins_ModeIgnoresOutlierRows(t *testing.T) {
	// Body text spans [30, 80) on most rows; a stray mark near the left edge
	// on two rows must not move the window.
	img := createFramedPage(100, 40, 30, 80, 5, 35)
	fillRect(img, 2, 0, 4, 2, black)

	left, right := DetectMargins(img, 0)
	if left != 30 || right != 80 {
		t.Errorf("DetectMargins = [%d, %d), want [30, 80)", left, right)
	}
}

func TestDetectMargins_Tolerance(t *testing.T) {
	img := createFramedPage(100, 40, 20, 70, 0, 40)
	// Faint scanner noise in the border.
	fillRect(img, 5, 0, 10, 40, color.RGBA{250, 250, 250, 255})

	if left, _ := DetectMargins(img, 0); left != 5 {
		t.Errorf("exact match: left = %d, want 5 (noise counts as content)", left)
	}
	if left, _ := DetectMargins(img, 0.05); left != 20 {
		t.Errorf("with tolerance: left = %d, want 20 (noise absorbed)", left)
	}
}

func TestTrimMargins_CropsBelowThreshold(t *testing.T) {
	img := createFramedPage(100, 40, 20, 70, 10, 30) // shrink = 0.5

	got, cropped := TrimMargins(img, 0.1, 0)
	if !cropped {
		t.Fatal("TrimMargins should crop when margin < shrink")
	}
	if got.Bounds() != image.Rect(0, 0, 50, 40) {
		t.Errorf("bounds: got %v, want (0,0)-(50,40)", got.Bounds())
	}
	// Column 0 of the result is the first content column.
	r, g, b, _ := got.At(0, 20).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("first column should be content (black), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestTrimMargins_SkipsAboveThreshold(t *testing.T) {
	img := createFramedPage(100, 40, 20, 70, 10, 30) // shrink = 0.5

	for _, margin := range []float64{0.5, 0.6, 1.0} {
		got, cropped := TrimMargins(img, margin, 0)
		if cropped {
			t.Errorf("margin %.1f: TrimMargins should not crop", margin)
		}
		if got != image.Image(img) {
			t.Errorf("margin %.1f: untouched image should be returned as-is", margin)
		}
	}
}

func TestTrimMargins_GuardUsesRemovedShare(t *testing.T) {
	img := createFramedPage(100, 40, 2, 98, 0, 40) // shrink = 0.04

	if _, cropped := TrimMargins(img, 0.03, 0); !cropped {
		t.Error("margin 0.03: a 4% border should be trimmed")
	}
	if _, cropped := TrimMargins(img, 0.05, 0); cropped {
		t.Error("margin 0.05: a 4% border should be kept")
	}
}

func TestTrimMargins_NoOpCases(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"blank page", createInMemoryImage(60, 30, white)},
		{"full bleed", createInMemoryImage(60, 30, black)},
		{"empty image", image.NewRGBA(image.Rect(0, 0, 0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, cropped := TrimMargins(tt.img, 0, 0); cropped {
				t.Error("TrimMargins should be a no-op")
			}
		})
	}
}
