package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jongio/bonsai-core/cliout"
)

func TestNew_Defaults(t *testing.T) {
	info := New("bonsai")
	if info.Name != "bonsai" {
		t.Errorf("expected Name 'bonsai', got %q", info.Name)
	}
	if info.Version != "0.0.0-dev" {
		t.Errorf("expected Version '0.0.0-dev', got %q", info.Version)
	}
	if info.BuildDate != "unknown" {
		t.Errorf("expected BuildDate 'unknown', got %q", info.BuildDate)
	}
	if info.GitCommit != "unknown" {
		t.Errorf("expected GitCommit 'unknown', got %q", info.GitCommit)
	}
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Name:      "bonsai",
		Version:   "1.2.3",
		BuildDate: "2026-01-01",
		GitCommit: "abc123",
	}
	expected := "bonsai version 1.2.3 (commit: abc123, built: 2026-01-01)"
	if got := info.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func runVersion(t *testing.T, format string, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cliout.SetOutput(&buf)
	if err := cliout.SetFormat(format); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		cliout.SetOutput(&bytes.Buffer{})
		_ = cliout.SetFormat("default")
	})

	info := &Info{Name: "bonsai", Version: "1.2.3", BuildDate: "2026-01-01", GitCommit: "abc123", GoVersion: "go1.26.0"}
	cmd := NewCommand(info)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return buf.String()
}

func TestNewCommand_Default(t *testing.T) {
	output := runVersion(t, "default")
	for _, want := range []string{"bonsai Version", "1.2.3", "2026-01-01", "abc123", "go1.26.0"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestNewCommand_Quiet(t *testing.T) {
	if got := runVersion(t, "default", "--quiet"); got != "1.2.3\n" {
		t.Errorf("expected just the version, got %q", got)
	}
}

func TestNewCommand_JSON(t *testing.T) {
	output := runVersion(t, "json", "-q")

	var got Info
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if got.Version != "1.2.3" || got.GitCommit != "abc123" || got.Name != "bonsai" {
		t.Errorf("unexpected info: %+v", got)
	}
}

func TestNewCommand_RejectsArgs(t *testing.T) {
	cmd := NewCommand(New("bonsai"))
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unexpected argument")
	}
}
