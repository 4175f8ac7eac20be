package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/bonsai-core/cliout"
)

// CaptureOutput routes cliout to a buffer while fn runs and returns what was
// printed. Output goes back to stdout afterwards, even if fn fails. An error
// from fn is logged, not fatal, so callers can assert on partial output.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	var buf bytes.Buffer
	cliout.SetOutput(&buf)
	defer cliout.SetOutput(os.Stdout)

	if err := fn(); err != nil {
		t.Logf("Command error: %v", err)
	}
	return buf.String()
}

// TempDir creates a temporary directory that is removed when the test
// completes.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "bonsai-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	return tmpDir
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
