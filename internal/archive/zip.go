package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"time"
)

// Zip writes a CBZ container. Entries are stored without compression since
// page images are already compressed.
type Zip struct {
	w       *zip.Writer
	closer  io.Closer
	entries entrySet
}

// newZip returns a CBZ backend writing to w. Finish closes closer when it
// is not nil.
func newZip(w io.Writer, closer io.Closer) *Zip {
	return &Zip{w: zip.NewWriter(w), closer: closer}
}

func (z *Zip) create(name string) (io.Writer, error) {
	if err := z.entries.add(name); err != nil {
		return nil, err
	}
	hdr := &zip.FileHeader{Name: name, Method: zip.Store, Modified: time.Unix(0, 0)}
	hdr.SetMode(entryMode)
	w, err := z.w.CreateHeader(hdr)
	if err != nil {
		return nil, fmt.Errorf("failed to add zip entry %s: %w", name, err)
	}
	return w, nil
}

// WriteBytes adds one stored entry holding data.
func (z *Zip) WriteBytes(name string, data []byte) error {
	w, err := z.create(name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write zip entry %s: %w", name, err)
	}
	return nil
}

// WriteFile adds one stored entry with the contents of f.
func (z *Zip) WriteFile(name string, f fs.File) error {
	w, err := z.create(name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to write zip entry %s: %w", name, err)
	}
	return nil
}

// Finish writes the central directory and closes the output file, if any.
func (z *Zip) Finish() error {
	if err := z.entries.finish(); err != nil {
		return err
	}
	err := z.w.Close()
	if err != nil {
		err = fmt.Errorf("failed to finish zip: %w", err)
	}
	if z.closer != nil {
		if cerr := z.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close zip: %w", cerr)
		}
	}
	return err
}
