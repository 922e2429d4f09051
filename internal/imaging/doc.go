// Package imaging provides the pixel-level operations of the page pipeline.
//
// This package decodes scanned pages, detects and trims uniform side margins,
// cuts two-page spreads in half, normalizes resolution, and re-encodes pages
// for the archive. All operations work with standard Go image.Image types and
// use a coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Returned images are always normalized to a zero origin, so callers can
// treat Bounds().Dx() and Bounds().Dy() as the page width and height.
//
// # Ownership
//
// Every function that changes pixels returns a freshly allocated buffer and
// never aliases its input. Functions that leave an image untouched return the
// input value itself and report that through a boolean, which lets callers
// keep a byte-for-byte copy of the source file for unmodified pages.
//
// # Margin Detection
//
// The margin detector samples the background at the top-right pixel and
// scans every row for the first and last pixel that differs from it. Colour
// comparison is exact by default; a positive tolerance switches it to a
// CIE76 distance in Lab space so JPEG noise in the border does not count
// as content.
//
// # Supported Formats
//
// Decoding recognizes PNG, JPEG, GIF, BMP, TIFF and WebP by content. Encoding
// supports everything except WebP; pages read from WebP are re-encoded as PNG.
package imaging
