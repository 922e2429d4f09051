package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/SnowyRenard/manga-koukan/internal/archive"
	"github.com/SnowyRenard/manga-koukan/internal/config"
	"github.com/SnowyRenard/manga-koukan/internal/imaging"
	"github.com/SnowyRenard/manga-koukan/internal/page"
)

// coverStem is the entry name, minus extension, of the cover image.
const coverStem = "cover"

// entry is one archive member ready to be written. A nil data means the
// source file is copied verbatim.
type entry struct {
	name   string
	data   []byte
	source string
}

// EntryStem returns the zero-padded entry name, without extension, of the
// page at 0-based position i out of total. Names are at least four digits
// and widen as needed so that lexicographic order matches page order.
func EntryStem(i, total int) string {
	width := max(4, len(strconv.Itoa(total)))
	return fmt.Sprintf("%0*d", width, i+1)
}

// prepare turns ordered pages into archive entries, encoding in parallel.
// The cover reuses the first page's encoded bytes.
func prepare(ctx context.Context, pages []*page.Page, cfg *config.Config) ([]entry, error) {
	var (
		target    imaging.Format
		hasTarget bool
	)
	if cfg.ImageFormat != "" {
		target, hasTarget = imaging.EncodeFormat(cfg.ImageFormat)
	}

	entries := make([]entry, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(cfg))
	for i, p := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			stem := EntryStem(i, len(pages))
			if !hasTarget && !p.Modified {
				entries[i] = entry{
					name:   stem + "." + imaging.SourceExtension(p.SourceFormat),
					source: p.Source,
				}
				return nil
			}
			f := target
			if !hasTarget {
				f, _ = imaging.EncodeFormat(p.SourceFormat)
			}
			name := stem + "." + imaging.Extension(f)
			data, err := imaging.Encode(p.Image, f, cfg.JPEGQuality)
			if err != nil {
				return fmt.Errorf("%w %s (from %s): %w", ErrEncode, name, p.Source, err)
			}
			entries[i] = entry{name: name, data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	first := entries[0]
	cover := entry{
		name:   coverStem + first.name[len(EntryStem(0, len(pages))):],
		data:   first.data,
		source: first.source,
	}
	return append([]entry{cover}, entries...), nil
}

// emit writes entries to sink in order. It stops at the first failure.
func emit(ctx context.Context, sink archive.Sink, entries []entry, logger *slog.Logger) error {
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeEntry(sink, e); err != nil {
			return err
		}
		logger.Debug("wrote entry", "name", e.name, "copied", e.data == nil)
	}
	return nil
}

func writeEntry(sink archive.Sink, e entry) error {
	if e.data != nil {
		if err := sink.WriteBytes(e.name, e.data); err != nil {
			return fmt.Errorf("%w %s: %w", ErrSinkWrite, e.name, err)
		}
		return nil
	}
	f, err := os.Open(e.source)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrSinkWrite, e.name, err)
	}
	defer f.Close()
	if err := sink.WriteFile(e.name, f); err != nil {
		return fmt.Errorf("%w %s: %w", ErrSinkWrite, e.name, err)
	}
	return nil
}
