package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultMaxPages is the page budget: the maximum number of artifacts
	// the crawl will ever hold on disk, across resumed runs. Fifty pages
	// keeps a first run fast while still exercising the frontier.
	DefaultMaxPages = 50

	// DefaultSeedURL is the start URL used when none is configured.
	DefaultSeedURL = "https://tr.wikipedia.org/wiki/Recep_Tayyip_Erdo%C4%9Fan"

	// DefaultScopeHost is the site-scope substring. A discovered URL is
	// only crawled when its host contains this value.
	DefaultScopeHost = "tr.wikipedia.org"

	// DefaultFetchTimeout bounds each HTTP fetch. Thirty seconds is
	// generous for a single article page; expiry surfaces as a transport
	// error, not a crash.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxRetries is how many failed fetch attempts a single URL is
	// allowed before the frontier refuses to dequeue it again. Failures
	// never mark a URL visited, so without this bound a persistently
	// broken URL would be retried forever.
	DefaultMaxRetries = 3

	// DefaultMaxBodySize limits the response body size read per page.
	// Article pages are far smaller; the cap guards against surprises.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// DefaultUserAgent identifies wikicrawl in HTTP requests. A
	// descriptive User-Agent lets site operators identify crawler traffic.
	DefaultUserAgent = "wikicrawl/1.0 (+https://github.com/wikicrawl/wikicrawl)"

	// DefaultOutputDir is where page artifacts are written.
	DefaultOutputDir = "pages"

	// StateFileName is the frontier state file name inside the data dir.
	StateFileName = "crawl_state.json"

	// AppName is the application name used for XDG directory paths.
	AppName = "wikicrawl"
)

// Environment variable names recognized by FromEnv.
const (
	EnvMaxPages  = "WIKICRAWL_MAX_PAGES"
	EnvStartURLs = "WIKICRAWL_START_URLS"
	EnvScopeHost = "WIKICRAWL_SCOPE_HOST"
	EnvOutputDir = "WIKICRAWL_OUTPUT_DIR"
)

// Config holds all configuration options for a crawl run.
// It is populated from defaults, then environment, then CLI flags, and
// passed through the application by dependency injection rather than
// global state.
type Config struct {
	// MaxPages is the cumulative artifact budget. The crawl stops once
	// the persisted file counter reaches this value.
	MaxPages int

	// StartURLs seed the pending queue. Seeds already present in the
	// persisted visited set are skipped lazily at dequeue time, which is
	// what makes re-running with the same seeds resumable.
	StartURLs []string

	// ScopeHost is the substring a URL's host must contain to be crawled.
	ScopeHost string

	// FetchTimeout bounds each individual page fetch.
	FetchTimeout time.Duration

	// OutputDir is the directory page artifacts are written to.
	OutputDir string

	// StateFile is the path of the persisted frontier state. Empty means
	// StateFileName inside DataDir.
	StateFile string

	// DataDir is where durable crawl data (state file, page archive)
	// lives. Defaults to the XDG data directory.
	DataDir string

	// UserAgent is sent with every HTTP request.
	UserAgent string

	// MaxBodySize caps the response body read per fetch, in bytes.
	MaxBodySize int64

	// MaxRetries bounds fetch attempts per URL before the frontier gives
	// up on it for the rest of the run.
	MaxRetries int

	// CountEmptyPages controls the policy for pages whose content
	// container is missing or empty. True (the historical behavior) writes
	// an artifact, marks the URL visited, and spends budget; false
	// discards the attempt without any state change.
	CountEmptyPages bool

	// ArchiveToDB enables the SQLite page archive in DataDir.
	ArchiveToDB bool

	// Verbose enables debug-level log output.
	Verbose bool

	// MarkdownReport switches the run summary from plain text to
	// GitHub Flavored Markdown.
	MarkdownReport bool

	// ReportFile writes the run summary to this path instead of stdout.
	ReportFile string
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor instead of relying on zero values
// because most defaults are non-zero (budget, timeout, seed URL). The
// constructor also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		MaxPages:        DefaultMaxPages,
		StartURLs:       []string{DefaultSeedURL},
		ScopeHost:       DefaultScopeHost,
		FetchTimeout:    DefaultFetchTimeout,
		OutputDir:       DefaultOutputDir,
		DataDir:         XDGDataDir(),
		UserAgent:       DefaultUserAgent,
		MaxBodySize:     DefaultMaxBodySize,
		MaxRetries:      DefaultMaxRetries,
		CountEmptyPages: true,
		ArchiveToDB:     true,
	}
}

// FromEnv overlays environment variables onto the config. Unset or
// malformed values leave the existing setting untouched.
func (c *Config) FromEnv() {
	if v := os.Getenv(EnvMaxPages); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxPages = n
		}
	}
	if v := os.Getenv(EnvStartURLs); v != "" {
		urls := make([]string, 0)
		for _, u := range strings.Split(v, ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
		if len(urls) > 0 {
			c.StartURLs = urls
		}
	}
	if v := os.Getenv(EnvScopeHost); v != "" {
		c.ScopeHost = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
}

// StateFilePath returns the effective frontier state file path.
func (c *Config) StateFilePath() string {
	if c.StateFile != "" {
		return c.StateFile
	}
	return filepath.Join(c.DataDir, StateFileName)
}

// XDGDataDir returns the XDG data directory for wikicrawl.
// On Linux: ~/.local/share/wikicrawl
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for wikicrawl.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for wikicrawl.
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
//
// Design decision: We validate once after flag parsing rather than at
// each point of use, to fail fast with a clear message. The first error
// is returned rather than a collection because fixing one often makes
// the rest irrelevant.
func (c *Config) Validate() error {
	if len(c.StartURLs) == 0 {
		return ErrNoStartURL
	}
	if c.MaxPages <= 0 {
		return ErrInvalidMaxPages
	}
	if c.ScopeHost == "" {
		return ErrNoScopeHost
	}
	if c.FetchTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxRetries <= 0 {
		return ErrInvalidMaxRetries
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}
	return nil
}
