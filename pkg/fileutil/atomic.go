// Package fileutil provides file system utilities for writing and moving
// desktop entries safely.
package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dtopr/internal/errors"
)

const tempPattern = ".dtopr-atomic-*.tmp"

// AtomicWriteTo creates path with perm from whatever write produces. The
// content goes to a temp file in the same directory, is synced, and is
// renamed over path only when write succeeds, so readers never see a
// partial file and a failed write leaves any existing file untouched.
//
// The parent directory must exist.
func AtomicWriteTo(path string, perm os.FileMode, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	committed = true
	return nil
}

// AtomicWriteFile writes data to path atomically. See AtomicWriteTo.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	return AtomicWriteTo(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return errors.Wrap(err, "writing temp file")
	})
}

// AtomicWriteYAML encodes v as YAML (2-space indent) into path with 0644
// permissions.
func AtomicWriteYAML(path string, v any) error {
	return AtomicWriteTo(path, 0o644, func(w io.Writer) (err error) {
		// yaml.v3 panics on some unsupported kinds instead of returning
		defer func() {
			if r := recover(); r != nil {
				err = errors.Newf("marshaling YAML: %v", r)
			}
		}()

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "marshaling YAML")
		}
		return errors.Wrap(enc.Close(), "flushing YAML")
	})
}
