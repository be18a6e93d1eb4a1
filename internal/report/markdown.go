package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/wikicrawl/wikicrawl/internal/model"
)

// MarkdownWriter outputs summaries in GitHub Flavored Markdown, designed
// for documentation and sharing crawl results.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation: type-safe tables and lists, and mermaid pie
// charts without hand-rolled string assembly.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.CrawlSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Crawl Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Site", "`" + summary.Site + "`"},
			{"Started", summary.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", summary.Elapsed().String()},
			{"Stopped", stopText(summary.Reason)},
		},
	})
	md.PlainText("")

	md.H2("Pages")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Written this run", strconv.Itoa(summary.PagesWritten)},
			{"Total on disk", strconv.Itoa(summary.TotalFiles)},
			{"Attempts", strconv.Itoa(summary.Attempts)},
			{"Failures", strconv.Itoa(summary.Failures)},
			{"Queue at stop", strconv.Itoa(summary.QueueDepth)},
		},
	})
	md.PlainText("")

	if summary.Headings > 0 || summary.Paragraphs > 0 {
		w.writeBlockChart(md, summary)
	}

	if summary.PersistenceErrors > 0 {
		md.Warningf(
			"%d persistence error(s) occurred; the next resume may re-fetch recent pages.",
			summary.PersistenceErrors,
		)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// writeBlockChart writes a mermaid pie chart of the block-kind mix.
func (w *MarkdownWriter) writeBlockChart(md *markdown.Markdown, summary *model.CrawlSummary) {
	md.H2("Content Blocks")
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Extracted Block Kinds"),
		piechart.WithShowData(true),
	)
	if summary.Headings > 0 {
		chart.LabelAndIntValue("Headings", uint64(summary.Headings))
	}
	if summary.Paragraphs > 0 {
		chart.LabelAndIntValue("Paragraphs", uint64(summary.Paragraphs))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}
