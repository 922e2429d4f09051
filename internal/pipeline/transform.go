package pipeline

import (
	"fmt"

	"github.com/SnowyRenard/manga-koukan/internal/config"
	"github.com/SnowyRenard/manga-koukan/internal/imaging"
	"github.com/SnowyRenard/manga-koukan/internal/page"
)

// Result is what one transform task hands back: the page, or both halves of
// a split spread, plus what was done to it.
type Result struct {
	Pages   []*page.Page
	Cropped bool
	Split   bool
	Resized int
}

// Transform decodes the image at path and runs it through margin trimming,
// spread splitting and resizing, in that order. position is the file's
// index in discovery order.
//
// Margin trimming runs only when cfg.Margin is set and resizing only when
// cfg.Resolution is set. The only error is a decode failure, wrapped in
// ErrDecode; the transforms themselves cannot fail.
func Transform(path string, position int, cfg *config.Config) (*Result, error) {
	img, format, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	p := page.New(path, img, format, position)
	res := &Result{}

	if cfg.Margin != nil {
		if trimmed, ok := imaging.TrimMargins(p.Image, *cfg.Margin, cfg.MarginColorTolerance); ok {
			p.Image, p.Modified = trimmed, true
			res.Cropped = true
		}
	}

	res.Pages = page.Split(p, cfg.SplitSpreads)
	res.Split = len(res.Pages) > 1

	if r := cfg.Resolution; r != nil {
		for _, pg := range res.Pages {
			if resized, ok := imaging.Resize(pg.Image, r.Width, r.Height); ok {
				pg.Image, pg.Modified = resized, true
				res.Resized++
			}
		}
	}
	return res, nil
}
