package archive

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"time"
)

// Tar writes a CBT container using GNU headers.
type Tar struct {
	w       *tar.Writer
	closer  io.Closer
	entries entrySet
}

// newTar returns a CBT backend writing to w. Finish closes closer when it
// is not nil.
func newTar(w io.Writer, closer io.Closer) *Tar {
	return &Tar{w: tar.NewWriter(w), closer: closer}
}

func (t *Tar) write(name string, size int64, r io.Reader) error {
	if err := t.entries.add(name); err != nil {
		return err
	}
	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Mode:     entryMode,
		Size:     size,
		ModTime:  time.Unix(0, 0),
		Format:   tar.FormatGNU,
	}
	if err := t.w.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to add tar entry %s: %w", name, err)
	}
	if _, err := io.Copy(t.w, r); err != nil {
		return fmt.Errorf("failed to write tar entry %s: %w", name, err)
	}
	return nil
}

// WriteBytes adds one entry holding data.
func (t *Tar) WriteBytes(name string, data []byte) error {
	return t.write(name, int64(len(data)), bytes.NewReader(data))
}

// WriteFile adds one entry with the contents of f. The entry size comes from
// f.Stat, so f must be a regular file that does not change while it is read.
func (t *Tar) WriteFile(name string, f fs.File) error {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return t.write(name, info.Size(), f)
}

// Finish writes the tar trailer and closes the output file, if any.
func (t *Tar) Finish() error {
	if err := t.entries.finish(); err != nil {
		return err
	}
	err := t.w.Close()
	if err != nil {
		err = fmt.Errorf("failed to finish tar: %w", err)
	}
	if t.closer != nil {
		if cerr := t.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close tar: %w", cerr)
		}
	}
	return err
}
