package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// TargetSize resolves a requested size against a source size. A zero
// component is derived from the other so the aspect ratio is kept, using the
// unscaled source dimensions and truncating toward zero. The arithmetic is
// integer so exact ratios stay exact. Derived sizes never drop below one
// pixel.
func TargetSize(srcW, srcH int, width, height uint32) (int, int) {
	w, h := int64(width), int64(height)
	if w == 0 && srcH > 0 {
		w = int64(srcW) * h / int64(srcH)
	}
	if h == 0 && srcW > 0 {
		h = int64(srcH) * w / int64(srcW)
	}
	return int(max(w, 1)), int(max(h, 1))
}

// Resize scales img to the requested size with a Lanczos filter.
//
// A zero width or height is derived from the other (see TargetSize). When
// both are zero the input is returned untouched along with false.
func Resize(img image.Image, width, height uint32) (image.Image, bool) {
	if width == 0 && height == 0 {
		return img, false
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return img, false
	}

	w, h := TargetSize(b.Dx(), b.Dy(), width, height)
	return imaging.Resize(img, w, h, imaging.Lanczos), true
}
