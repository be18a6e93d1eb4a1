package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wikicrawl/wikicrawl/internal/model"
)

// SimpleWriter outputs human-readable text summaries for terminal
// display.
//
// Design decision: Plain text with ASCII formatting rather than ANSI
// colors because it works in every terminal and pipes cleanly to files.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(summary *model.CrawlSummary) (int, error) {
	var sb strings.Builder

	sb.WriteString("Crawl Summary\n")
	sb.WriteString(strings.Repeat("-", 40))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Site:           %s\n", summary.Site)
	fmt.Fprintf(&sb, "Stopped:        %s\n", stopText(summary.Reason))
	fmt.Fprintf(&sb, "Elapsed:        %s\n", summary.Elapsed().Round(1e6)) // milliseconds
	fmt.Fprintf(&sb, "Pages written:  %d (total on disk: %d)\n", summary.PagesWritten, summary.TotalFiles)
	fmt.Fprintf(&sb, "Attempts:       %d (failures: %d)\n", summary.Attempts, summary.Failures)
	fmt.Fprintf(&sb, "Blocks:         %d headings, %d paragraphs\n", summary.Headings, summary.Paragraphs)
	fmt.Fprintf(&sb, "Queue at stop:  %d pending\n", summary.QueueDepth)

	if summary.PersistenceErrors > 0 {
		fmt.Fprintf(&sb, "WARNING:        %d persistence error(s); next resume may re-fetch recent pages\n",
			summary.PersistenceErrors)
	}

	return io.WriteString(w.output, sb.String())
}

// stopText renders a stop reason for humans.
func stopText(reason model.StopReason) string {
	switch reason {
	case model.StopBudgetReached:
		return "page budget reached"
	case model.StopFrontierExhausted:
		return "frontier exhausted (no more links in scope)"
	case model.StopCancelled:
		return "cancelled"
	case model.StopOutputFailure:
		return "output directory failure"
	default:
		return string(reason)
	}
}
