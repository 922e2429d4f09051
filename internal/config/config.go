// Package config holds runtime configuration: defaults, YAML file loading,
// resolution parsing, and validation. The CLI layers its flags on top of the
// values produced here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"gopkg.in/yaml.v3"

	"github.com/SnowyRenard/manga-koukan/internal/archive"
)

// DefaultJPEGQuality is used when the output codec is JPEG and no quality is set.
const DefaultJPEGQuality = 95

var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrUnknownFormat     = errors.New("unknown format")
)

// Resolution is a target output size. A zero component is derived from the
// other one so the aspect ratio is kept.
type Resolution struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], then mutated by CLI flags.
type Config struct {
	// Paths.
	Input  string `yaml:"input"`
	Output string `yaml:"output"` // Derived from Input when empty.

	// Output encoding.
	ImageFormat   string        `yaml:"image_format"` // Empty keeps each page's source codec.
	ArchiveFormat archive.Format `yaml:"archive_format"`
	JPEGQuality   int           `yaml:"jpeg_quality"` // Default: 95.

	// Page transforms.
	Resolution           *Resolution `yaml:"resolution"`             // nil disables resizing.
	Margin               *float64    `yaml:"margin"`                 // nil disables margin trimming.
	MarginColorTolerance float64     `yaml:"margin_color_tolerance"` // 0 = exact colour match.
	SplitSpreads         bool        `yaml:"split_spreads"`          // Default: true.

	// Run behavior.
	Recursive bool `yaml:"recursive"`
	Workers   int  `yaml:"workers"` // Default: runtime.NumCPU().
	Strict    bool `yaml:"strict"`  // Abort on the first undecodable file.
	Verbose   bool `yaml:"verbose"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		ArchiveFormat: archive.CBZ,
		JPEGQuality:   DefaultJPEGQuality,
		SplitSpreads:  true,
		Workers:       runtime.NumCPU(),
	}
}

// LoadFile reads a YAML config file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseResolution parses "WxH". Either side may be 0 to derive it from the
// other. "0x0" means no resize and yields nil.
func ParseResolution(s string) (*Resolution, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w %q: want WIDTHxHEIGHT", ErrInvalidResolution, s)
	}
	w, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w %q: width: %v", ErrInvalidResolution, s, err)
	}
	h, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w %q: height: %v", ErrInvalidResolution, s, err)
	}
	if w == 0 && h == 0 {
		return nil, nil
	}
	return &Resolution{Width: uint32(w), Height: uint32(h)}, nil
}

// ResolveOutput fills Output with the input path carrying the archive
// extension when no output was given.
func (c *Config) ResolveOutput() {
	if c.Output != "" {
		return
	}
	in := filepath.Clean(c.Input)
	c.Output = strings.TrimSuffix(in, filepath.Ext(in)) + "." + string(c.ArchiveFormat)
}

// Validate checks the config for values the pipeline cannot run with and
// normalizes the format names it accepts.
func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input directory is required"))
	}
	if f, err := archive.ParseFormat(string(c.ArchiveFormat)); err != nil {
		errs = append(errs, err)
	} else {
		c.ArchiveFormat = f
	}
	if c.ImageFormat != "" {
		if _, err := imaging.FormatFromExtension(c.ImageFormat); err != nil {
			errs = append(errs, fmt.Errorf("%w: image %q", ErrUnknownFormat, c.ImageFormat))
		} else {
			c.ImageFormat = strings.ToLower(strings.TrimPrefix(c.ImageFormat, "."))
		}
	}
	if c.Margin != nil && (*c.Margin < 0 || *c.Margin > 1) {
		errs = append(errs, fmt.Errorf("margin %.3f out of range [0,1]", *c.Margin))
	}
	if c.MarginColorTolerance < 0 {
		errs = append(errs, fmt.Errorf("margin colour tolerance %.3f must be >= 0", c.MarginColorTolerance))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must be >= 0", c.Workers))
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("jpeg quality %d out of range [1,100]", c.JPEGQuality))
	}
	return errors.Join(errs...)
}
