package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tympanix/eofnotchar/internal/config"
	"github.com/tympanix/eofnotchar/internal/operations"
	"github.com/tympanix/eofnotchar/internal/util"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run takes stdout as an *os.File because syscat writes to its descriptor
// directly.
func run(args []string, stdout *os.File, stderr io.Writer) int {
	cfg := config.New("syscat")
	opts := &operations.SyscatOptions{}
	status := operations.StatusSuccess

	var rootCmd = &cobra.Command{
		Use:           "syscat [flags] <file>",
		Short:         "Copy a file to standard output one byte per system call",
		Long:          "Copy a file to standard output one byte per system call\n\nA file that cannot be opened is copied as if it were empty.\n\nExit codes:\n  0 - Always, once the command line is valid\n  1 - The command line is invalid",
		Version:       version,
		Args:          util.FileOperand,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(cmd.Flags()); err != nil {
				return err
			}
			opts.Logger = cfg.Logger(stderr)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			status = operations.Syscat(args[0], stdout, opts)
		},
	}

	rootCmd.Flags().BoolP("verbose", "v", false, "Report open, read and write failures on stderr")

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "syscat: %v\n", err)
		return int(operations.StatusUsage)
	}
	return int(status)
}
