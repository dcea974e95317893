package fileutil

import (
	"os"
	"syscall"

	"github.com/thoreinstein/dtopr/internal/errors"
)

// MoveFile renames src to dst. When they are on different filesystems the
// file is copied atomically with its permissions and src is removed.
func MoveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return errors.Wrap(err, "renaming file")
	}

	info, err := os.Stat(src)
	if err != nil {
		return errors.Wrap(err, "stat source")
	}
	data, err := ReadFileWithLimit(src)
	if err != nil {
		return err
	}
	if err := AtomicWriteFile(dst, data, info.Mode().Perm()); err != nil {
		return errors.Wrap(err, "copying across filesystems")
	}
	return errors.Wrap(os.Remove(src), "removing source after copy")
}
