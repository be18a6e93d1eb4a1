// Package main provides the entry point for the wikicrawl CLI.
//
// wikicrawl is a breadth-first crawler for a single wiki-style site. It
// extracts structured article bodies (headings and paragraphs), writes
// one text artifact per page, and persists its frontier so interrupted
// runs resume without re-fetching.
//
// Usage:
//
//	wikicrawl crawl [seed-urls...]
//	wikicrawl history
//
// See --help for all available options.
package main

// main is the entry point for wikicrawl.
func main() {
	Execute()
}
