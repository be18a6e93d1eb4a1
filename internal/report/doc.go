// Package report renders crawl run summaries for operators.
//
// Two formats are supported: a plain-text summary for terminal display
// and a GitHub Flavored Markdown summary (tables and a block-type pie
// chart) for documentation and sharing. Both implement the same Writer
// interface so the CLI can pick the destination and format independently.
package report
