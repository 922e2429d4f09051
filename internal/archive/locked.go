package archive

import (
	"io/fs"
	"sync"
)

// Locked serializes access to a Sink. Each call holds the mutex until the
// wrapped call returns.
type Locked struct {
	mu   sync.Mutex
	sink Sink
}

// NewLocked wraps s in a single-writer guard.
func NewLocked(s Sink) *Locked {
	return &Locked{sink: s}
}

func (l *Locked) WriteBytes(name string, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.WriteBytes(name, data)
}

func (l *Locked) WriteFile(name string, f fs.File) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.WriteFile(name, f)
}

func (l *Locked) Finish() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.Finish()
}
