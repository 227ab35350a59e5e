// Package output persists the rendered document and prints the run
// summary.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// IOError indicates a filesystem failure the run cannot recover from:
// the output directory or file could not be written, or the header
// template exists but could not be read. Nothing is retried.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Writer persists rendered documents into the output directory, one
// file per period.
type Writer struct {
	Dir string
}

// Write stores the document at <dir>/<key>.md, replacing any previous
// content. The write is atomic: a temp file in the same directory is
// renamed over the target, so a failed run never leaves a partial
// report behind.
func (w *Writer) Write(key, content string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", &IOError{Op: "write", Path: w.Dir, Err: err}
	}

	path := filepath.Join(w.Dir, key+".md")

	tmp, err := os.CreateTemp(w.Dir, key+".*.tmp")
	if err != nil {
		return "", &IOError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &IOError{Op: "write", Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", &IOError{Op: "write", Path: path, Err: err}
	}

	return path, nil
}
