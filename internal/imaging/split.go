package imaging

import "image"

// SplitSpread cuts a two-page spread into its left and right halves.
//
// An image counts as a spread when it is wider than it is tall. The left
// half takes width/2 columns and the right half the rest, so the halves
// always add up to the original width. Both keep the full height. For
// anything that is not a spread ok is false and both halves are nil.
func SplitSpread(img image.Image) (left, right image.Image, ok bool) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if height == 0 || width <= height {
		return nil, nil, false
	}

	mid := width / 2
	l, err := CropColumns(img, 0, mid)
	if err != nil {
		return nil, nil, false
	}
	r, err := CropColumns(img, mid, width)
	if err != nil {
		return nil, nil, false
	}
	return l, r, true
}
