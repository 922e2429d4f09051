package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop copies the rectangular region (x1,y1)-(x2,y2) of img into a new
// zero-origin buffer. Coordinates are absolute, in the source image's bounds.
func Crop(img image.Image, x1, y1, x2, y2 int) (*image.NRGBA, error) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, image.Rect(x1, y1, x2, y2)), nil
}

// CropColumns keeps the full height of img and the column range [left, right),
// given relative to the image's left edge.
func CropColumns(img image.Image, left, right int) (*image.NRGBA, error) {
	b := img.Bounds()
	return Crop(img, b.Min.X+left, b.Min.Y, b.Min.X+right, b.Max.Y)
}
