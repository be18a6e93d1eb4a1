package config

import "errors"

// Configuration validation errors returned by Config.Validate().
//
// Design decision: Package-level sentinel errors rather than fresh
// instances inside Validate() so callers can use errors.Is() while the
// messages stay human-readable.
var (
	// ErrNoStartURL is returned when no seed URL is configured.
	ErrNoStartURL = errors.New("no start URL: provide at least one seed URL")

	// ErrInvalidMaxPages is returned when the page budget is not positive.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be positive")

	// ErrNoScopeHost is returned when the site-scope substring is empty.
	// An empty scope would let the crawl wander to arbitrary hosts.
	ErrNoScopeHost = errors.New("no scope host: site scope substring must not be empty")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxRetries is returned when the per-URL retry bound is not
	// positive. Zero retries would reject every URL before its first attempt.
	ErrInvalidMaxRetries = errors.New("invalid max retries: must be positive")

	// ErrInvalidMaxBodySize is returned when the body size cap is negative.
	// Use 0 to apply the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrNoOutputDir is returned when the artifact output directory is empty.
	ErrNoOutputDir = errors.New("no output directory: artifact destination must be set")
)
