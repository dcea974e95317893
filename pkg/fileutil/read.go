package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/dtopr/internal/errors"
)

// MaxFileSize caps how much of a file is read into memory. Desktop entries
// are a few hundred bytes; anything near this size is not one.
const MaxFileSize int64 = 1 << 20

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads path, failing with ErrFileTooLarge when it holds
// more than MaxFileSize bytes.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return ReadLimited(f, MaxFileSize)
}

// ReadLimited reads r to EOF, failing with ErrFileTooLarge once more than
// limit bytes arrive.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
