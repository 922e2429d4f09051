package pipeline

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/SnowyRenard/manga-koukan/internal/imaging"
)

// Rejection is a file that looked like an image but could not be read as one.
type Rejection struct {
	Path string
	Err  error
}

// Discovery is the outcome of listing an input directory.
type Discovery struct {
	Images   []string    // Recognized images, sorted by path.
	Rejected []Rejection // Files with an image extension that failed to sniff.
}

// Discover lists dir and keeps the regular files whose content is a
// recognized image, sorted lexicographically for a deterministic discovery
// order. Subdirectories are walked only when recursive is set.
//
// Files with an image extension whose header cannot be decoded are reported
// in Rejected; other unrecognized files are skipped at debug level.
//
// # Errors
//
//   - ErrInputNotFound if dir is missing, unreadable, or not a directory
//   - ErrNoImagesFound if no file qualifies; the Discovery is still returned
func Discover(dir string, recursive bool, logger *slog.Logger) (*Discovery, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInputNotFound, dir)
	}

	var files []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, path)
			}
			return nil
		})
	} else {
		var entries []os.DirEntry
		entries, err = os.ReadDir(dir)
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	sort.Strings(files)

	found := &Discovery{}
	for _, path := range files {
		if !isRegular(path) {
			logger.Debug("skipping non-regular file", "path", path)
			continue
		}
		format, err := imaging.Sniff(path)
		if err != nil {
			if imaging.HasImageExtension(path) {
				found.Rejected = append(found.Rejected, Rejection{
					Path: path,
					Err:  fmt.Errorf("%w: %s: %w", ErrDecode, path, err),
				})
			} else {
				logger.Debug("skipping non-image file", "path", path)
			}
			continue
		}
		logger.Debug("discovered image", "path", path, "format", format)
		found.Images = append(found.Images, path)
	}

	if len(found.Images) == 0 {
		return found, fmt.Errorf("%w in %s", ErrNoImagesFound, dir)
	}
	return found, nil
}

// isRegular reports whether path resolves to a regular file, following
// symlinks.
func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
