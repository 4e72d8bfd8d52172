package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"divlog/internal/console"
	tu "divlog/internal/testutil"
	appver "divlog/internal/version"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := NewRootCmd(strings.NewReader(stdin), &out, &errb)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errb.String(), err
}

func TestCLI_WarningOnStderr(t *testing.T) {
	out, errOut, err := run(t, "", "warning", "disk", "usage", "high")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty stdout, got %q", out)
	}
	if want := "\x1b[33m┃\x1b[0m disk usage high\n"; errOut != want {
		t.Fatalf("stderr got %q, want %q", errOut, want)
	}
}

func TestCLI_FatalOnStdout(t *testing.T) {
	out, errOut, err := run(t, "", "fatal", "-o", "unrecoverable:", "42")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if errOut != "" {
		t.Fatalf("expected empty stderr, got %q", errOut)
	}
	if want := "\x1b[31m┃\x1b[0m \x1b[1munrecoverable: 42\x1b[0m\n"; out != want {
		t.Fatalf("stdout got %q, want %q", out, want)
	}
}

func TestCLI_ColorNever(t *testing.T) {
	out, _, err := run(t, "", "--color", "never", "note", "--stdout", "hi")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if out != "┃ hi\n" {
		t.Fatalf("stdout got %q", out)
	}
}

func TestCLI_ColorAutoOnBuffer(t *testing.T) {
	_, errOut, err := run(t, "", "--color", "auto", "error", "plain")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if errOut != "┃ plain\n" {
		t.Fatalf("stderr got %q", errOut)
	}
}

func TestCLI_ReadsStdinLines(t *testing.T) {
	out, _, err := run(t, "first\nsecond\n", "info", "-o")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	got := tu.Lines(console.Plain(out))
	if len(got) != 2 || got[0] != "┃ first" || got[1] != "┃ second" {
		t.Fatalf("got %q", got)
	}
}

func TestCLI_ReadsLongStdinLine(t *testing.T) {
	long := strings.Repeat("a", 70*1024)
	out, _, err := run(t, long+"\r\nshort", "info", "-o")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	got := tu.Lines(console.Plain(out))
	if len(got) != 2 || got[0] != "┃ "+long || got[1] != "┃ short" {
		t.Fatalf("expected the long line and the unterminated last line, got %d lines", len(got))
	}
}

func TestCLI_LevelsColorNever(t *testing.T) {
	out, _, err := run(t, "", "--color", "never", "levels")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escapes with --color never, got %q", out)
	}
	if !strings.Contains(out, "SEVERITY") || !strings.Contains(out, "┃ sample note") {
		t.Fatalf("unexpected levels output:\n%s", out)
	}
}

func TestCLI_LevelsWriteError(t *testing.T) {
	cmd := NewRootCmd(strings.NewReader(""), tu.ErrWriter{Err: io.ErrClosedPipe}, &bytes.Buffer{})
	cmd.SetArgs([]string{"levels"})
	if err := cmd.Execute(); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected closed pipe error, got %v", err)
	}
}

func TestCLI_InvalidFlags(t *testing.T) {
	if _, _, err := run(t, "", "--color", "sometimes", "info", "x"); err == nil {
		t.Fatalf("expected error for bad --color")
	}
	if _, _, err := run(t, "", "--on-error", "retry", "info", "x"); err == nil {
		t.Fatalf("expected error for bad --on-error")
	}
}

func TestCLI_Levels(t *testing.T) {
	out, _, err := run(t, "", "levels")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	plain := console.Plain(out)
	for _, want := range []string{"SEVERITY", "info", "note", "warning", "error", "fatal", "yellow", "bold", "┃ sample fatal"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("levels output missing %q:\n%s", want, plain)
		}
	}

	out, _, err = run(t, "", "levels", "Warning")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if plain := console.Plain(out); !strings.Contains(plain, "warning") || strings.Contains(plain, "fatal") {
		t.Fatalf("filtered levels output:\n%s", plain)
	}

	_, _, err = run(t, "", "levels", "warn")
	if err == nil || !strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("expected suggestion error, got %v", err)
	}
}

func TestCLI_Demo(t *testing.T) {
	out, errOut, err := run(t, "", "--color", "never", "demo", "-o", "--parallel", "4")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if errOut != "" {
		t.Fatalf("expected empty stderr, got %q", errOut)
	}
	lines := tu.Lines(out)
	if len(lines) != len(console.Severities)+4 {
		t.Fatalf("expected %d lines, got %q", len(console.Severities)+4, lines)
	}
	for _, ln := range lines {
		if !strings.HasPrefix(ln, "┃ ") {
			t.Fatalf("unexpected line %q", ln)
		}
	}
}

func TestCLI_Version(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if strings.TrimSpace(out) != appver.AppVersion {
		t.Fatalf("version got %q", out)
	}
}
