package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewRootCmd tests the command tree wiring.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("registers all subcommands", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()

		want := map[string]bool{
			"crawl":   false,
			"history": false,
			"init":    false,
			"version": false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected subcommand %q registered", name)
			}
		}
	})

	t.Run("has a persistent verbose flag", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if cmd.PersistentFlags().Lookup("verbose") == nil {
			t.Error("expected persistent --verbose flag")
		}
	})

	t.Run("help runs without error", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetErr(&buf)
		cmd.SetArgs([]string{"--help"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "breadth-first") {
			t.Errorf("expected long description in help, got:\n%s", buf.String())
		}
	})

	t.Run("unknown subcommand is an error", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"bogus"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for unknown subcommand")
		}
	})
}

// TestVersionCmd tests the version subcommand output.
func TestVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"wikicrawl version", "commit:", "built:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in version output, got:\n%s", want, out)
		}
	}
}

// TestGetVersion tests version fallbacks without ldflags.
func TestGetVersion(t *testing.T) {
	t.Parallel()

	if v := getVersion(); v == "" {
		t.Error("expected a non-empty version string")
	}
	if c := getCommit(); c == "" {
		t.Error("expected a non-empty commit string")
	}
	if d := getDate(); d == "" {
		t.Error("expected a non-empty date string")
	}
}
