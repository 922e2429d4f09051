package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// imageExtensions lists file extensions (lowercase, with leading dot) that
// are expected to hold an image. A file carrying one of these that fails to
// decode is reported as a decode failure rather than silently ignored.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// HasImageExtension reports whether path ends in a known image extension.
func HasImageExtension(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// Sniff reads the image header at path and returns the codec name registered
// for it ("png", "jpeg", "gif", "bmp", "tiff" or "webp").
//
// Only the header is decoded, so Sniff is cheap enough to run on every
// directory entry during discovery.
func Sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image header: %w", err)
	}
	return format, nil
}

// Open decodes the image at path and returns it together with its codec name.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the content is not a supported image
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image header: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("failed to rewind image: %w", err)
	}

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}
