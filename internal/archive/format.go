package archive

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects the container backend.
type Format string

const (
	CBZ Format = "cbz" // Zip container (default).
	CBT Format = "cbt" // Tar container.
)

var ErrUnknownFormat = errors.New("unknown archive format")

// ParseFormat maps a name (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CBZ, CBT:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (want cbz or cbt)", ErrUnknownFormat, s)
	}
}
