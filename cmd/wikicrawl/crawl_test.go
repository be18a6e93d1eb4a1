package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/wikicrawl/wikicrawl/internal/config"
	"github.com/wikicrawl/wikicrawl/internal/model"
)

// parseCrawlFlags creates a crawl command with parsed flags but without
// running it.
func parseCrawlFlags(t *testing.T, args ...string) (*cobra.Command, []string) {
	t.Helper()

	cmd := NewCrawlCmd()
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("flag parsing failed: %v", err)
	}
	return cmd, cmd.Flags().Args()
}

// isolateConfigDiscovery keeps a stray .wikicrawl in the real cwd or
// home directory from leaking into the test.
func isolateConfigDiscovery(t *testing.T) {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

// TestBuildConfig tests the configuration layering of the crawl command.
func TestBuildConfig(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		isolateConfigDiscovery(t)
		cmd, args := parseCrawlFlags(t)

		cfg, err := buildConfig(cmd, args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxPages != config.DefaultMaxPages {
			t.Errorf("expected default budget, got %d", cfg.MaxPages)
		}
		if cfg.ScopeHost != config.DefaultScopeHost {
			t.Errorf("expected default scope, got %q", cfg.ScopeHost)
		}
		if !cfg.CountEmptyPages || !cfg.ArchiveToDB {
			t.Errorf("expected default policies, got %+v", cfg)
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		isolateConfigDiscovery(t)
		cmd, args := parseCrawlFlags(t,
			"--max-pages", "5",
			"--scope", "en.wikipedia.org",
			"--skip-empty",
			"--no-archive",
			"--output-dir", "/tmp/out",
		)

		cfg, err := buildConfig(cmd, args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxPages != 5 {
			t.Errorf("expected budget 5, got %d", cfg.MaxPages)
		}
		if cfg.ScopeHost != "en.wikipedia.org" {
			t.Errorf("expected flag scope, got %q", cfg.ScopeHost)
		}
		if cfg.CountEmptyPages {
			t.Error("expected skip-empty to disable counting")
		}
		if cfg.ArchiveToDB {
			t.Error("expected no-archive to disable archiving")
		}
		if cfg.OutputDir != "/tmp/out" {
			t.Errorf("expected flag output dir, got %q", cfg.OutputDir)
		}
	})

	t.Run("flags override environment", func(t *testing.T) {
		isolateConfigDiscovery(t)
		t.Setenv(config.EnvMaxPages, "99")

		cmd, args := parseCrawlFlags(t, "--max-pages", "5")
		cfg, err := buildConfig(cmd, args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxPages != 5 {
			t.Errorf("expected flag to win over env, got %d", cfg.MaxPages)
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		isolateConfigDiscovery(t)
		t.Setenv(config.EnvMaxPages, "99")

		cmd, args := parseCrawlFlags(t)
		cfg, err := buildConfig(cmd, args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxPages != 99 {
			t.Errorf("expected env budget 99, got %d", cfg.MaxPages)
		}
	})

	t.Run("positional arguments become seeds", func(t *testing.T) {
		isolateConfigDiscovery(t)
		cmd, args := parseCrawlFlags(t,
			"https://tr.wikipedia.org/wiki/Ankara",
			"https://tr.wikipedia.org/wiki/Bursa",
		)

		cfg, err := buildConfig(cmd, args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.StartURLs) != 2 || cfg.StartURLs[0] != "https://tr.wikipedia.org/wiki/Ankara" {
			t.Errorf("expected positional seeds, got %v", cfg.StartURLs)
		}
	})

	t.Run("config file settings are applied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".wikicrawl")
		content := `
defaults:
  maxPages: 12
sites:
  tr.wikipedia.org:
    seeds:
      - https://tr.wikipedia.org/wiki/Ankara
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd, args := parseCrawlFlags(t, "--config", path)
		cfg, err := buildConfig(cmd, args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxPages != 12 {
			t.Errorf("expected file budget 12, got %d", cfg.MaxPages)
		}
		if len(cfg.StartURLs) != 1 || cfg.StartURLs[0] != "https://tr.wikipedia.org/wiki/Ankara" {
			t.Errorf("expected file seeds, got %v", cfg.StartURLs)
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		cmd, args := parseCrawlFlags(t, "--config", filepath.Join(t.TempDir(), "missing"))

		if _, err := buildConfig(cmd, args); err == nil {
			t.Error("expected error for explicit missing config file")
		}
	})
}

// TestOutputSummary tests summary destination selection.
func TestOutputSummary(t *testing.T) {
	t.Parallel()

	summary := &model.CrawlSummary{
		Site:         "tr.wikipedia.org",
		PagesWritten: 3,
		Attempts:     3,
		Reason:       model.StopFrontierExhausted,
	}

	t.Run("writes to the provided writer by default", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		var buf bytes.Buffer

		if err := outputSummary(cfg, summary, &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Crawl Summary") {
			t.Errorf("expected summary on the writer, got %q", buf.String())
		}
	})

	t.Run("report file takes precedence over the writer", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.ReportFile = filepath.Join(t.TempDir(), "reports", "run.txt")
		var buf bytes.Buffer

		if err := outputSummary(cfg, summary, &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected nothing on the writer, got %q", buf.String())
		}

		data, err := os.ReadFile(cfg.ReportFile)
		if err != nil {
			t.Fatalf("expected report file: %v", err)
		}
		if !strings.Contains(string(data), "Crawl Summary") {
			t.Errorf("expected summary in report file, got %q", string(data))
		}
	})

	t.Run("markdown format is honored", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.MarkdownReport = true
		var buf bytes.Buffer

		if err := outputSummary(cfg, summary, &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "# Crawl Report") {
			t.Errorf("expected markdown summary, got %q", buf.String())
		}
	})
}
