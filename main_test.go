package main

import (
	"bytes"
	"strings"
	"testing"

	"spheretrace/internal/logging"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logging.Set(nil) })
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "spheretrace ") {
		t.Fatalf("version output: %q", out)
	}
}

func TestBenchCommand(t *testing.T) {
	t.Setenv("SPHERETRACE_IMAGE_WIDTH", "80")
	out, err := execute(t, "bench", "--frames", "2", "--workers", "3", "--log-level", "error")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	for _, want := range []string{", 2 frames", "sequential:", "parallel:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("bench output missing %q:\n%s", want, out)
		}
	}
}

func TestBenchRejectsZeroFrames(t *testing.T) {
	if _, err := execute(t, "bench", "--frames", "0"); err == nil {
		t.Fatalf("bench --frames 0: expected error")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := execute(t, "version", "--log-level", "loud"); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestHeadlessCommand(t *testing.T) {
	t.Setenv("SPHERETRACE_IMAGE_WIDTH", "32")
	if _, err := execute(t, "headless", "--hz", "200", "--ticks", "3", "--parallel"); err != nil {
		t.Fatalf("headless: %v", err)
	}
}
