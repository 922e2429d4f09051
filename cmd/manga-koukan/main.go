// manga-koukan packs a directory of scanned manga pages into a comic book
// archive (CBZ or CBT), trimming margins, splitting two-page spreads and
// resizing along the way.
//
// Usage:
//
//	manga-koukan <input-dir> [-o out.cbz] [-a cbz|cbt] [-f png] [-r 1080x0] [--margin 0.1]
//
// Set MANGA_KOUKAN_LOG_LEVEL=debug (or pass --verbose) for per-page logging.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
