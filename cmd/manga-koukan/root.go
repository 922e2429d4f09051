package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SnowyRenard/manga-koukan/internal/archive"
	"github.com/SnowyRenard/manga-koukan/internal/config"
	"github.com/SnowyRenard/manga-koukan/internal/logging"
	"github.com/SnowyRenard/manga-koukan/internal/pipeline"
)

type rootFlags struct {
	configPath  string
	output      string
	archive     string
	format      string
	resolution  string
	margin      float64
	tolerance   float64
	jpegQuality int
	noSplit     bool
	recursive   bool
	workers     int
	strict      bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	cmd, _ := newCommand()
	return cmd
}

// newCommand builds the root command and returns the flag values it binds.
func newCommand() (*cobra.Command, *rootFlags) {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "manga-koukan <input-dir>",
		Short: "Pack scanned manga pages into a CBZ or CBT archive",
		Long: "manga-koukan reads every image in a directory, orders pages by the number in\n" +
			"their file name, optionally trims margins, splits two-page spreads and resizes,\n" +
			"then writes a cover plus the numbered pages into one archive.",
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, args, flags)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
			logger.Debug("starting run", "version", Version, "input", cfg.Input, "output", cfg.Output)

			stats, err := pipeline.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), cfg.Output, stats)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML config file; flags override its values")
	f.StringVarP(&flags.output, "output", "o", "", "Archive path (default: input path with the archive extension)")
	f.StringVarP(&flags.archive, "archive", "a", string(archive.CBZ), "Archive format: cbz or cbt")
	f.StringVarP(&flags.format, "format", "f", "", "Re-encode every page to this image format (default: keep source format)")
	f.StringVarP(&flags.resolution, "resolution", "r", "", "Resize pages to WIDTHxHEIGHT; 0 on one side keeps the aspect ratio")
	f.Float64Var(&flags.margin, "margin", 0, "Trim side margins when they take more than this fraction of the width")
	f.Float64Var(&flags.tolerance, "margin-tolerance", 0, "Colour distance still counted as background when trimming")
	f.IntVar(&flags.jpegQuality, "jpeg-quality", config.DefaultJPEGQuality, "JPEG quality (1-100)")
	f.BoolVar(&flags.noSplit, "no-split", false, "Keep two-page spreads whole")
	f.BoolVar(&flags.recursive, "recursive", false, "Include images in subdirectories")
	f.IntVarP(&flags.workers, "workers", "j", 0, "Parallel page workers (default: number of CPUs)")
	f.BoolVar(&flags.strict, "strict", false, "Abort on the first undecodable image instead of skipping it")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Log every page at debug level")
	return cmd, flags
}

// buildConfig layers the config file (if any) under the flags the user set,
// then validates the result and resolves the output path.
func buildConfig(cmd *cobra.Command, args []string, flags *rootFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadFile(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	set := cmd.Flags().Changed
	if set("output") {
		cfg.Output = flags.output
	}
	if set("archive") {
		cfg.ArchiveFormat = archive.Format(flags.archive)
	}
	if set("format") {
		cfg.ImageFormat = flags.format
	}
	if set("resolution") {
		res, err := config.ParseResolution(flags.resolution)
		if err != nil {
			return nil, err
		}
		cfg.Resolution = res
	}
	if set("margin") {
		m := flags.margin
		cfg.Margin = &m
	}
	if set("margin-tolerance") {
		cfg.MarginColorTolerance = flags.tolerance
	}
	if set("jpeg-quality") {
		cfg.JPEGQuality = flags.jpegQuality
	}
	if set("no-split") {
		cfg.SplitSpreads = !flags.noSplit
	}
	if set("recursive") {
		cfg.Recursive = flags.recursive
	}
	if set("workers") {
		cfg.Workers = flags.workers
	}
	if set("strict") {
		cfg.Strict = flags.strict
	}
	if set("verbose") {
		cfg.Verbose = flags.verbose
	}

	if cfg.Input == "" {
		return nil, errors.New("no input directory: pass one as an argument or set input in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.ResolveOutput()
	return &cfg, nil
}

func printSummary(w io.Writer, output string, s *pipeline.Stats) {
	fmt.Fprintf(w, "Wrote %s: %d pages from %d images\n", output, s.Pages, s.Discovered)
	fmt.Fprintf(w, "  spreads split: %d\n", s.Spreads)
	fmt.Fprintf(w, "  margins trimmed: %d\n", s.Cropped)
	fmt.Fprintf(w, "  resized: %d\n", s.Resized)
	if s.Skipped > 0 {
		fmt.Fprintf(w, "  skipped (undecodable): %d\n", s.Skipped)
	}
}
