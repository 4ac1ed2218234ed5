//go:build unix

package operations

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/tympanix/eofnotchar/internal/util"
)

// runSyscat points the raw copier at a temp file standing in for stdout.
func runSyscat(t *testing.T, path string, verbose bool) (Status, []byte, string) {
	t.Helper()

	out, err := os.CreateTemp(t.TempDir(), "stdout-*")
	if err != nil {
		t.Fatalf("Failed to create stdout file: %v", err)
	}
	defer out.Close()

	var stderr bytes.Buffer
	opts := &SyscatOptions{Logger: util.NewLogger(&stderr, "syscat")}
	if verbose {
		opts.Logger = util.NewVerboseLogger(&stderr, "syscat")
	}

	status := Syscat(path, out, opts)

	got, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatalf("Failed to read stdout file: %v", err)
	}
	return status, got, stderr.String()
}

func TestSyscatCopiesFile(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"empty file", []byte{}},
		{"binary bytes", []byte{0x00, 0x41, 0xFF}},
		{"text", []byte("one byte per syscall\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "input", tt.content)

			status, got, stderr := runSyscat(t, path, false)
			if status != StatusSuccess {
				t.Errorf("Expected status %d, got %d", StatusSuccess, status)
			}
			if !bytes.Equal(got, tt.content) {
				t.Errorf("Expected %v, got %v", tt.content, got)
			}
			if stderr != "" {
				t.Errorf("Expected no diagnostics, got %q", stderr)
			}
		})
	}
}

func TestSyscatMissingFileIsSilent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	status, got, stderr := runSyscat(t, path, false)
	if status != StatusSuccess {
		t.Errorf("Expected status %d, got %d", StatusSuccess, status)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty output, got %v", got)
	}
	if stderr != "" {
		t.Errorf("Expected no diagnostics, got %q", stderr)
	}
}

func TestSyscatMissingFileVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	status, _, stderr := runSyscat(t, path, true)
	if status != StatusSuccess {
		t.Errorf("Expected status %d, got %d", StatusSuccess, status)
	}
	if !strings.HasPrefix(stderr, "syscat: open "+path) {
		t.Errorf("Expected verbose open failure, got %q", stderr)
	}
}

func TestSyscatReadErrorTerminates(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("reading a directory fails with EISDIR on Linux")
	}

	status, got, stderr := runSyscat(t, t.TempDir(), true)
	if status != StatusSuccess {
		t.Errorf("Expected status %d, got %d", StatusSuccess, status)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty output, got %v", got)
	}
	if !strings.Contains(stderr, "stopped after 0 bytes") {
		t.Errorf("Expected verbose read failure, got %q", stderr)
	}
}

func TestSyscatMatchesMcat(t *testing.T) {
	content := []byte{0x00, 0x41, 0xFF, '\r', '\n', 0x1A}
	path := writeFile(t, "input", content)

	_, raw, _ := runSyscat(t, path, false)
	_, buffered, _ := runMcat(path, &McatOptions{}, false)
	if string(raw) != buffered {
		t.Errorf("Copiers disagree: syscat=%v mcat=%v", raw, []byte(buffered))
	}
}
