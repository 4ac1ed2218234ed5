package operations

import (
	"io"
	"os"
	"path/filepath"

	"github.com/tympanix/eofnotchar/internal/checksum"
	"github.com/tympanix/eofnotchar/internal/compression"
	"github.com/tympanix/eofnotchar/internal/copier"
	"github.com/tympanix/eofnotchar/internal/progress"
)

// Mcat copies the file at path to stdout through buffered stream I/O.
//
// The only reported failure is opening the file, which returns
// StatusOpenFailed. Once open, a read error ends the copy exactly like end of
// stream and the status stays StatusSuccess; with a verbose logger the
// condition is logged.
func Mcat(path string, stdout io.Writer, opts *McatOptions) Status {
	if opts == nil {
		opts = &McatOptions{}
	}
	logger := loggerOrDefault(opts.Logger, "mcat")

	var sum checksum.Summer
	if opts.ChecksumAlgorithm != "" {
		s, err := checksum.New(opts.ChecksumAlgorithm)
		if err != nil {
			logger.Println(err)
			return StatusUsage
		}
		sum = s
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Printf("can't open %s: %v\n", path, openReason(err))
		return StatusOpenFailed
	}
	defer file.Close()

	var src io.Reader = file
	var bar *progress.ProgressBar
	if opts.ShowProgress {
		bar = progress.NewProgressBar(sizeOf(file), filepath.Base(path), true)
		src = io.TeeReader(file, bar)
	}

	if opts.Decompress {
		format := opts.CompressionFormat
		if format == compression.FormatNone {
			format = compression.DetectFromFilename(path)
			logger.VerbosePrintf("detected compression %s for %s\n", format, path)
		}
		dec, err := format.NewReader(src)
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			logger.Printf("can't open %s: %v\n", path, err)
			return StatusOpenFailed
		}
		defer dec.Close()
		src = dec
	}

	var dst io.Writer = stdout
	if sum != nil {
		dst = io.MultiWriter(stdout, sum)
	}

	n, err := copier.Buffered(src, dst)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		logger.VerbosePrintf("%s: stopped after %d bytes: %v\n", path, n, err)
	} else {
		logger.VerbosePrintf("EOF: there will be no more data (%d bytes from %s)\n", n, path)
	}

	if sum != nil {
		logger.Println(checksum.Line(sum, path))
	}
	return StatusSuccess
}
