package operations

import (
	"errors"
	"io/fs"
	"os"

	"github.com/tympanix/eofnotchar/internal/util"
)

func loggerOrDefault(logger util.Logger, program string) util.Logger {
	if logger != nil {
		return logger
	}
	return util.NewLogger(os.Stderr, program)
}

// openReason strips the operation and path from a *fs.PathError so the
// caller can name the path once, e.g. "can't open x: no such file or directory".
func openReason(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// sizeOf returns the size of a regular file, or -1 when it is unknown
// (pipes, character devices).
func sizeOf(f *os.File) int64 {
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return -1
	}
	return info.Size()
}
