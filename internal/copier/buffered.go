package copier

import (
	"bufio"
	"errors"
	"io"
)

// Buffered copies r to w one byte at a time through a bufio.Reader and a
// bufio.Writer. The writer is flushed before returning.
//
// The returned error is nil when r reached end of stream, the read error when
// r failed, or the write error when w failed. Callers decide whether a read
// error is distinguished from end of stream.
func Buffered(r io.Reader, w io.Writer) (int64, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var written int64
	var readErr error
	for {
		c, err := br.ReadByte()
		if err != nil {
			readErr = err
			break
		}
		if err := bw.WriteByte(c); err != nil {
			return written - int64(bw.Buffered()), err
		}
		written++
	}

	if err := bw.Flush(); err != nil {
		// bufio.Writer keeps the bytes it could not flush, so they were never written.
		return written - int64(bw.Buffered()), err
	}
	if errors.Is(readErr, io.EOF) {
		return written, nil
	}
	return written, readErr
}
