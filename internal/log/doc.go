// Package log provides structured logging setup for wikicrawl.
//
// It wraps slog handlers with a truncating handler so that oversized
// attribute values (very long URLs, extracted titles, snippets) never
// flood log output. All wikicrawl components log through *slog.Logger
// instances produced here.
package log
