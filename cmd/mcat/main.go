package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tympanix/eofnotchar/internal/compression"
	"github.com/tympanix/eofnotchar/internal/config"
	"github.com/tympanix/eofnotchar/internal/operations"
	"github.com/tympanix/eofnotchar/internal/util"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.New("mcat")
	opts := &operations.McatOptions{}
	var compressionFormat string
	var checksumAlg string
	status := operations.StatusSuccess

	var rootCmd = &cobra.Command{
		Use:           "mcat [flags] <file>",
		Short:         "Copy a file to standard output through buffered I/O",
		Long:          "Copy a file to standard output through buffered I/O\n\nExit codes:\n  0 - Success, including a read error after the file was opened\n  1 - The file could not be opened, or the command line is invalid",
		Version:       version,
		Args:          util.FileOperand,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(cmd.Flags()); err != nil {
				return err
			}
			opts.Logger = cfg.Logger(stderr)
			opts.ShowProgress = cfg.ShowProgress(stderr)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if compressionFormat != "" {
				format, err := compression.Parse(compressionFormat)
				if err != nil {
					return err
				}
				opts.CompressionFormat = format
				opts.Decompress = true
			}
			if checksumAlg != "" {
				if err := opts.SetChecksumAlgorithm(checksumAlg); err != nil {
					return err
				}
			}
			status = operations.Mcat(args[0], stdout, opts)
			return nil
		},
	}

	rootCmd.Flags().BoolP("verbose", "v", false, "Report end of stream and read errors on stderr")
	rootCmd.Flags().BoolP("progress", "p", false, "Show a progress bar on stderr when it is a terminal")
	rootCmd.Flags().BoolVarP(&opts.Decompress, "decompress", "z", false, "Decompress gzip or zstd input, detected from the file extension")
	rootCmd.Flags().StringVar(&compressionFormat, "compress-format", "", "Compression format of the input: gzip or zstd (implies --decompress)")
	rootCmd.Flags().StringVarP(&checksumAlg, "checksum", "c", "", "Print a digest of the output on stderr (sha1, sha256, sha512, md5)")

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "mcat: %v\n", err)
		return int(operations.StatusUsage)
	}
	return int(status)
}
