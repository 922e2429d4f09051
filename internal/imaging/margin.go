package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// MostFrequent returns the value that occurs most often in values. Ties go
// to the value seen first. An empty slice yields fallback.
func MostFrequent(values []int, fallback int) int {
	if len(values) == 0 {
		return fallback
	}
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	best, bestCount := fallback, 0
	for _, v := range values {
		if c := counts[v]; c > bestCount {
			best, bestCount = v, c
		}
	}
	return best
}

// DetectMargins estimates the horizontal content window [left, right) of a
// scanned page, relative to the image's left edge.
//
// # Algorithm
//
//  1. The background colour is the pixel at the top-right corner.
//  2. Each row contributes the index of its first non-background pixel as a
//     left bound and one past its last non-background pixel as a right bound.
//     Rows made entirely of background contribute nothing.
//  3. Each bound is the most frequent per-row value. When no row holds
//     content, both bounds fall back to width/2, an empty window.
//
// tolerance is the colour distance under which a pixel still counts as
// background; 0 requires an exact match.
func DetectMargins(img image.Image, tolerance float64) (left, right int) {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	width, height := b.Dx(), b.Dy()
	sentinel := width / 2
	if width == 0 || height == 0 {
		return sentinel, sentinel
	}

	bg := newBackgroundMatcher(rgba.RGBAAt(b.Max.X-1, b.Min.Y), tolerance)

	lefts := make([]int, 0, height)
	rights := make([]int, 0, height)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		first, last := -1, -1
		for x := 0; x < width; x++ {
			if bg.matches(rgba.RGBAAt(b.Min.X+x, y)) {
				continue
			}
			if first < 0 {
				first = x
			}
			last = x
		}
		if first < 0 {
			continue
		}
		lefts = append(lefts, first)
		rights = append(rights, last+1)
	}

	return MostFrequent(lefts, sentinel), MostFrequent(rights, sentinel)
}

// TrimMargins crops img to the window found by DetectMargins.
//
// The crop is applied only when the fraction of width it removes is
// strictly greater than margin, so margin acts as the minimum shrink worth
// cropping for: 0 trims any detected border, 1 never trims.
//
// The guard compares the removed share (W-cropWidth)/W. Written the other
// way round, as (cropWidth-W)/W > margin, it is never true for a window
// inside the page, and computed in unsigned integers it wraps around and
// crops every page. When the crop is
// skipped the input image is returned unchanged along with false.
func TrimMargins(img image.Image, margin, tolerance float64) (image.Image, bool) {
	width := img.Bounds().Dx()
	if width == 0 {
		return img, false
	}

	left, right := DetectMargins(img, tolerance)
	cropWidth := right - left
	if cropWidth <= 0 {
		return img, false
	}

	shrink := float64(width-cropWidth) / float64(width)
	if !(margin < shrink) {
		return img, false
	}

	cropped, err := CropColumns(img, left, right)
	if err != nil {
		return img, false
	}
	return cropped, true
}
