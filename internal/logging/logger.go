// Package logging builds the process logger. Output goes to stderr as
// key=value text so stdout stays free for the run summary.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable that overrides the log level.
const EnvLevel = "MANGA_KOUKAN_LOG_LEVEL"

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog level.
// Anything else yields fallback.
func ParseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// New returns a text logger writing to w. Verbose forces debug; otherwise
// the level comes from EnvLevel, defaulting to warn.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := ParseLevel(os.Getenv(EnvLevel), slog.LevelWarn)
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything. Used by tests and library
// callers that do not care about diagnostics.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
