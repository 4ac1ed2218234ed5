package progress

import (
	"fmt"
	"io"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps a progress bar to track whether progress should be shown
type ProgressBar struct {
	bar          *progressbar.ProgressBar
	writer       io.Writer
	showProgress bool
}

// Write implements io.Writer so the bar can sit behind an io.TeeReader
func (p *ProgressBar) Write(b []byte) (int, error) {
	return p.bar.Write(b)
}

// Finish completes the progress bar and ends its line if progress is shown
func (p *ProgressBar) Finish() error {
	err := p.bar.Finish()
	if p.showProgress {
		fmt.Fprintln(p.writer)
	}
	return err
}

// NewProgressBar creates a byte progress bar on stderr. Stdout carries the
// copied data, so the bar never touches it. A totalBytes of -1 renders a
// spinner for inputs of unknown size.
func NewProgressBar(totalBytes int64, description string, showProgress bool) *ProgressBar {
	var writer io.Writer = ansi.NewAnsiStderr()
	if !showProgress {
		writer = io.Discard
	}
	return newProgressBar(writer, totalBytes, description, showProgress)
}

func newProgressBar(writer io.Writer, totalBytes int64, description string, showProgress bool) *ProgressBar {
	bar := progressbar.NewOptions64(totalBytes,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", description)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	return &ProgressBar{
		bar:          bar,
		writer:       writer,
		showProgress: showProgress,
	}
}
