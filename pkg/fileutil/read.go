package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/matter/internal/errors"
)

// DefaultMaxFileSize is the read limit used when none is configured (1MB).
const DefaultMaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded the read limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ReadFileWithLimit reads a file of at most limit bytes. A limit of zero or
// less means DefaultMaxFileSize. Missing files are reported as ErrNotFound.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "%s", path)
		}
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast on regular files that are already too large
	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > limit {
		return nil, tooLarge(limit)
	}

	return ReadAllWithLimit(f, limit)
}

// ReadAllWithLimit reads r to the end, failing once more than limit bytes
// have been seen. It is used for standard input, whose size is unknown.
func ReadAllWithLimit(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(limit)
	}
	return data, nil
}

func tooLarge(limit int64) error {
	return errors.Wrapf(ErrFileTooLarge, "limit is %d bytes", limit)
}
