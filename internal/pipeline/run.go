package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SnowyRenard/manga-koukan/internal/archive"
	"github.com/SnowyRenard/manga-koukan/internal/config"
	"github.com/SnowyRenard/manga-koukan/internal/page"
)

// Run converts the image directory cfg.Input into an archive at cfg.Output
// (derived from the input when empty). cfg should already be validated.
//
// Stats are returned even on failure and reflect the work done up to it.
// When a run fails after the output file was created, the partial archive is
// removed.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}

	output := cfg.Output
	if output == "" {
		resolved := *cfg
		resolved.ResolveOutput()
		output = resolved.Output
	}

	found, err := Discover(cfg.Input, cfg.Recursive, logger)
	if errors.Is(err, ErrInputNotFound) {
		return stats, err
	}
	stats.Discovered = len(found.Images)
	for _, r := range found.Rejected {
		if cfg.Strict {
			return stats, r.Err
		}
		logger.Warn("skipping undecodable file", "path", r.Path, "error", r.Err)
		stats.Skipped++
	}
	if err != nil {
		return stats, err
	}

	pages, err := transformAll(ctx, found.Images, cfg, logger, stats)
	if err != nil {
		return stats, err
	}
	page.Sort(pages)

	entries, err := prepare(ctx, pages, cfg)
	if err != nil {
		return stats, err
	}

	sink, err := archive.Create(cfg.ArchiveFormat, output)
	if err != nil {
		return stats, fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	locked := archive.NewLocked(sink)
	if err := emit(ctx, locked, entries, logger); err != nil {
		_ = locked.Finish()
		removePartial(output, logger)
		return stats, err
	}
	if err := locked.Finish(); err != nil {
		removePartial(output, logger)
		return stats, fmt.Errorf("%w %s: %w", ErrSinkFinish, output, err)
	}
	stats.Pages = len(pages)
	stats.Entries = len(entries)

	logger.Info("archive written",
		"output", output,
		"pages", stats.Pages,
		"spreads", stats.Spreads,
		"skipped", stats.Skipped,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return stats, nil
}

// transformAll runs Transform over paths on a bounded worker pool and
// flattens the results in discovery order. Decode failures are skipped with
// a warning unless cfg.Strict is set.
func transformAll(ctx context.Context, paths []string, cfg *config.Config, logger *slog.Logger, stats *Stats) ([]*page.Page, error) {
	results := make([]*Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(cfg))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Transform(path, i, cfg)
			if err != nil {
				if cfg.Strict {
					return err
				}
				logger.Warn("skipping undecodable file", "path", path, "error", err)
				return nil
			}
			logger.Debug("transformed page",
				"path", path,
				"pages", len(res.Pages),
				"cropped", res.Cropped)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pages []*page.Page
	for _, res := range results {
		if res == nil {
			stats.Skipped++
			continue
		}
		if res.Split {
			stats.Spreads++
		}
		if res.Cropped {
			stats.Cropped++
		}
		stats.Resized += res.Resized
		pages = append(pages, res.Pages...)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w in %s: no file could be decoded", ErrNoImagesFound, cfg.Input)
	}
	return pages, nil
}

// workerCount is the pool size for cfg; zero means one worker per CPU.
func workerCount(cfg *config.Config) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.NumCPU()
}

func removePartial(path string, logger *slog.Logger) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to remove partial archive", "path", path, "error", err)
	}
}
