package util

import (
	"fmt"
	"io"
)

// Logger writes diagnostics, never copied data.
type Logger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
	VerbosePrintf(format string, v ...interface{})
	VerbosePrintln(v ...interface{})
}

// SimpleLogger prefixes every line with the program name, the way cat(1) does.
type SimpleLogger struct {
	writer  io.Writer
	prefix  string
	verbose bool
}

// NewLogger creates a logger that writes to writer and drops verbose lines.
func NewLogger(writer io.Writer, program string) Logger {
	return &SimpleLogger{writer: writer, prefix: prefixFor(program)}
}

// NewVerboseLogger creates a logger with verbose mode enabled
func NewVerboseLogger(writer io.Writer, program string) Logger {
	return &SimpleLogger{writer: writer, prefix: prefixFor(program), verbose: true}
}

func prefixFor(program string) string {
	if program == "" {
		return ""
	}
	return program + ": "
}

func (l *SimpleLogger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(l.writer, l.prefix+format, v...)
}

func (l *SimpleLogger) Println(v ...interface{}) {
	fmt.Fprint(l.writer, l.prefix)
	fmt.Fprintln(l.writer, v...)
}

func (l *SimpleLogger) VerbosePrintf(format string, v ...interface{}) {
	if l.verbose {
		l.Printf(format, v...)
	}
}

func (l *SimpleLogger) VerbosePrintln(v ...interface{}) {
	if l.verbose {
		l.Println(v...)
	}
}
