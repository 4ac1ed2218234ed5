package compression

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Format represents the compression of an input stream
type Format string

const (
	FormatNone Format = ""
	FormatGzip Format = "gzip"
	FormatZstd Format = "zstd"
)

// String returns the string representation of the compression format
func (f Format) String() string {
	if f == FormatNone {
		return "none"
	}
	return string(f)
}

// Extension returns the file extension for the compression format
func (f Format) Extension() string {
	switch f {
	case FormatGzip:
		return ".gz"
	case FormatZstd:
		return ".zst"
	default:
		return ""
	}
}

// NewReader wraps r in a decompressor for the format. FormatNone returns r
// unchanged. gzip validates its header here; zstd reports a bad frame on the
// first read.
func (f Format) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch f {
	case FormatNone:
		return io.NopCloser(r), nil
	case FormatGzip:
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzipReader, nil
	case FormatZstd:
		zstdReader, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return &zstdReadCloser{zstdReader}, nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", f)
	}
}

// zstd.Decoder.Close returns nothing, so it does not satisfy io.Closer.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// Parse parses a string into a Format
func Parse(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "gzip", "gz":
		return FormatGzip, nil
	case "zstd", "zst":
		return FormatZstd, nil
	default:
		return FormatNone, fmt.Errorf("unsupported compression format '%s': must be one of: gzip, zstd", s)
	}
}

// DetectFromFilename detects the compression format from a filename.
// Names without a known extension are treated as uncompressed.
func DetectFromFilename(filename string) Format {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".gz"), strings.HasSuffix(lower, ".tgz"):
		return FormatGzip
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".tzst"):
		return FormatZstd
	default:
		return FormatNone
	}
}
