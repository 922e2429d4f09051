package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// entryMode is the permission set stored for every entry.
const entryMode = 0o755

var (
	ErrDuplicateEntry = errors.New("duplicate archive entry")
	ErrFinished       = errors.New("archive already finished")
)

// Sink accepts named entries and serializes them into a container.
type Sink interface {
	// WriteBytes adds one entry holding data.
	WriteBytes(name string, data []byte) error
	// WriteFile adds one entry by streaming the contents of f.
	WriteFile(name string, f fs.File) error
	// Finish seals the container and releases its output. It must be called
	// exactly once, after the last write.
	Finish() error
}

// Create opens path for writing and returns the backend for format. The
// backend owns the file and closes it in Finish.
func Create(format Format, path string) (Sink, error) {
	if format != CBZ && format != CBT {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	if format == CBT {
		return newTar(f, f), nil
	}
	return newZip(f, f), nil
}

// entrySet tracks written names and the finished state shared by backends.
type entrySet struct {
	names    map[string]bool
	finished bool
}

func (e *entrySet) add(name string) error {
	if e.finished {
		return ErrFinished
	}
	if e.names == nil {
		e.names = make(map[string]bool)
	}
	if e.names[name] {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, name)
	}
	e.names[name] = true
	return nil
}

func (e *entrySet) finish() error {
	if e.finished {
		return ErrFinished
	}
	e.finished = true
	return nil
}
