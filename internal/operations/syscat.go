package operations

import (
	"os"

	"github.com/tympanix/eofnotchar/internal/copier"
)

// Syscat copies the file at path to the stdout descriptor with one read and
// one write system call per byte.
//
// It always returns StatusSuccess. A file that cannot be opened produces no
// output, as if it were empty; the descriptor is never read in that case.
// Read and write errors end the copy. Both are only visible through a
// verbose logger.
func Syscat(path string, stdout *os.File, opts *SyscatOptions) Status {
	if opts == nil {
		opts = &SyscatOptions{}
	}
	logger := loggerOrDefault(opts.Logger, "syscat")

	fd, err := copier.OpenRaw(path)
	if err != nil {
		logger.VerbosePrintf("open %s: %v\n", path, err)
		return StatusSuccess
	}
	defer copier.CloseRaw(fd)

	n, err := copier.Raw(fd, int(stdout.Fd()))
	if err != nil {
		logger.VerbosePrintf("%s: stopped after %d bytes: %v\n", path, n, err)
		return StatusSuccess
	}
	logger.VerbosePrintf("EOF: %d bytes from %s\n", n, path)
	return StatusSuccess
}
