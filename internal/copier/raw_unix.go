//go:build unix

package copier

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// OpenRaw opens path read-only and returns the bare descriptor.
func OpenRaw(path string) (int, error) {
	for {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return fd, err
	}
}

// CloseRaw closes a descriptor returned by OpenRaw.
func CloseRaw(fd int) error {
	return unix.Close(fd)
}

// Raw copies the descriptor in to the descriptor out with one read(2) and one
// write(2) per byte and no buffering in between. A zero-length read is end of
// stream. Interrupted calls are retried; any other error stops the copy and is
// returned, so a descriptor that keeps failing never spins.
func Raw(in, out int) (int64, error) {
	var c [1]byte
	var written int64
	for {
		n, err := unix.Read(in, c[:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, nil
		}
		if err := writeByte(out, c[:]); err != nil {
			return written, err
		}
		written++
	}
}

func writeByte(fd int, b []byte) error {
	for {
		n, err := unix.Write(fd, b)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		if n != len(b) {
			return io.ErrShortWrite
		}
		return nil
	}
}
