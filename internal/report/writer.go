package report

import (
	"io"

	"github.com/wikicrawl/wikicrawl/internal/model"
)

// Writer renders a crawl run summary to a configured destination.
//
// Design decision: We use an interface so the CLI can write to stdout,
// a file, or both with the same API, and tests can render into buffers.
type Writer interface {
	// Write outputs the summary. Returns the number of bytes written
	// and any error encountered.
	Write(summary *model.CrawlSummary) (int, error)
}

// MultiWriter writes a summary to several Writers in turn. Useful for
// printing to the terminal while also writing a report file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the summary to all configured Writers, stopping on the
// first error. Returns total bytes written.
func (m *MultiWriter) Write(summary *model.CrawlSummary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
