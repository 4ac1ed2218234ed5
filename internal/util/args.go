package util

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrMissingOperand is returned when no file is named on the command line.
var ErrMissingOperand = errors.New("missing file operand")

// FileOperand is a cobra.PositionalArgs that accepts exactly one file path.
func FileOperand(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return ErrMissingOperand
	case len(args) > 1:
		return fmt.Errorf("extra operand '%s'", args[1])
	}
	return nil
}
