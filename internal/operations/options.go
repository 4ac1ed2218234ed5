package operations

import (
	"github.com/tympanix/eofnotchar/internal/checksum"
	"github.com/tympanix/eofnotchar/internal/compression"
	"github.com/tympanix/eofnotchar/internal/util"
)

// McatOptions holds options for the buffered copier
type McatOptions struct {
	Logger            util.Logger
	ShowProgress      bool
	Decompress        bool               // Decompress gzip or zstd input before copying
	CompressionFormat compression.Format // Explicit format; detected from the file name when empty
	ChecksumAlgorithm string             // Digest of the copied output, printed to stderr when set
}

// SetChecksumAlgorithm validates and sets the checksum algorithm
// Returns an error if the algorithm is not supported
func (opts *McatOptions) SetChecksumAlgorithm(algorithm string) error {
	s, err := checksum.New(algorithm)
	if err != nil {
		return err
	}
	opts.ChecksumAlgorithm = s.Algorithm()
	return nil
}

// SyscatOptions holds options for the raw copier
type SyscatOptions struct {
	Logger util.Logger
}

// Status represents the exit status of a copy
type Status int

const (
	StatusSuccess    Status = 0
	StatusOpenFailed Status = 1
	StatusUsage      Status = 1
)
