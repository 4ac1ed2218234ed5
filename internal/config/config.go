package config

import (
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/tympanix/eofnotchar/internal/util"
)

// Config holds the per-invocation presentation settings shared by mcat and
// syscat. Nothing is read from the environment or from files.
type Config struct {
	Program  string
	Verbose  bool
	Progress bool
}

// New creates a Config with everything off
func New(program string) *Config {
	return &Config{Program: program}
}

// Load reads the verbose and progress flags from flags. Flags a command does
// not define are left at their current value.
func (c *Config) Load(flags *pflag.FlagSet) error {
	if flags.Lookup("verbose") != nil {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return err
		}
		c.Verbose = v
	}
	if flags.Lookup("progress") != nil {
		p, err := flags.GetBool("progress")
		if err != nil {
			return err
		}
		c.Progress = p
	}
	return nil
}

// Logger returns a diagnostics logger writing to w
func (c *Config) Logger(w io.Writer) util.Logger {
	if c.Verbose {
		return util.NewVerboseLogger(w, c.Program)
	}
	return util.NewLogger(w, c.Program)
}

// ShowProgress reports whether a progress bar should be drawn on w
func (c *Config) ShowProgress(w io.Writer) bool {
	return c.Progress && IsTerminal(w)
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
