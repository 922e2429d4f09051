package imaging

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Format is an encodable image format.
type Format = imaging.Format

// Encodable formats.
const (
	JPEG = imaging.JPEG
	PNG  = imaging.PNG
	GIF  = imaging.GIF
	TIFF = imaging.TIFF
	BMP  = imaging.BMP
)

// formatExtensions maps encodable formats to the extension used for archive
// entry names.
var formatExtensions = map[Format]string{
	JPEG: "jpg",
	PNG:  "png",
	GIF:  "gif",
	TIFF: "tif",
	BMP:  "bmp",
}

// EncodeFormat resolves a codec name or extension ("jpeg", "jpg", ".png",
// "tiff", ...) to an encodable format. Names that cannot be encoded, such as
// "webp", resolve to PNG with ok set to false.
func EncodeFormat(name string) (f Format, ok bool) {
	f, err := imaging.FormatFromExtension(name)
	if err != nil {
		return PNG, false
	}
	return f, true
}

// Extension returns the entry-name extension for an encodable format.
func Extension(f Format) string {
	if ext, ok := formatExtensions[f]; ok {
		return ext
	}
	return strings.ToLower(f.String())
}

// SourceExtension returns the entry-name extension for a decoded codec name,
// used when a page is copied byte-for-byte from its source file.
func SourceExtension(codec string) string {
	if f, ok := EncodeFormat(codec); ok {
		return Extension(f)
	}
	return strings.ToLower(codec)
}

// Encode serializes img in format f. jpegQuality applies to JPEG only.
func Encode(img image.Image, f Format, jpegQuality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode %s image: %w", f, err)
	}
	return buf.Bytes(), nil
}
