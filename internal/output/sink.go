// Package output writes generated content to its destination exactly once.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdout is the path that selects standard output as the sink.
const Stdout = "-"

// Options controls how content is written.
type Options struct {
	// ChunkSize splits the write into pieces so progress can be reported.
	// Zero writes everything in one call.
	ChunkSize int
	// Progress, when set, receives every chunk after it has been written.
	Progress io.Writer
	// Stdout replaces os.Stdout for the "-" path.
	Stdout io.Writer
	// Perm is the mode of a newly created file. Zero means 0644.
	Perm os.FileMode
}

// Write stores data at path. Files are written to a temporary sibling and
// renamed into place, so the destination either holds all of data or is
// left untouched.
func Write(path string, data []byte, opts Options) (err error) {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}
	if path == Stdout {
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		return writeChunks(w, data, opts)
	}

	perm := opts.Perm
	if perm == 0 {
		perm = 0644
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err = writeChunks(tmp, data, opts); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

func writeChunks(w io.Writer, data []byte, opts Options) error {
	chunk := opts.ChunkSize
	if chunk <= 0 || chunk > len(data) {
		chunk = len(data)
	}
	if len(data) == 0 {
		return nil
	}
	for i := 0; i < len(data); i += chunk {
		end := i + chunk
		if end > len(data) {
			end = len(data)
		}
		n, err := w.Write(data[i:end])
		if err != nil {
			return err
		}
		if n != end-i {
			return io.ErrShortWrite
		}
		if opts.Progress != nil {
			opts.Progress.Write(data[i:end])
		}
	}
	return nil
}
