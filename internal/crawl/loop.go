package crawl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wikicrawl/wikicrawl/internal/artifact"
	"github.com/wikicrawl/wikicrawl/internal/database"
	"github.com/wikicrawl/wikicrawl/internal/extract"
	"github.com/wikicrawl/wikicrawl/internal/fetch"
	"github.com/wikicrawl/wikicrawl/internal/frontier"
	"github.com/wikicrawl/wikicrawl/internal/model"
)

// Loop drives the crawl: one URL at a time through fetch, extract,
// filter, write, and frontier bookkeeping.
type Loop struct {
	// fetcher retrieves page markup.
	fetcher fetch.Fetcher

	// frontier owns visited/pending/budget state.
	frontier *frontier.Frontier

	// outputDir is where artifacts are written.
	outputDir string

	// maxPages is the page budget, used for progress reporting.
	maxPages int

	// site is the scope host, recorded in summaries and the archive.
	site string

	// countEmptyPages controls whether a page with no extractable
	// content still writes an artifact, marks visited, and spends
	// budget. True is the historical behavior.
	countEmptyPages bool

	// progress observes every step.
	progress Progress

	// logger receives structured crawl events.
	logger *slog.Logger

	// archive is the optional SQLite page archive. Nil disables
	// archiving; archive failures never stop the crawl.
	archive *database.Archive
}

// Option configures a Loop.
type Option func(*Loop)

// WithProgress sets the progress observer.
func WithProgress(p Progress) Option {
	return func(l *Loop) {
		l.progress = p
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithArchive attaches the SQLite page archive.
func WithArchive(a *database.Archive) Option {
	return func(l *Loop) {
		l.archive = a
	}
}

// WithCountEmptyPages sets the empty-page policy.
func WithCountEmptyPages(count bool) Option {
	return func(l *Loop) {
		l.countEmptyPages = count
	}
}

// NewLoop creates a crawl loop.
func NewLoop(fetcher fetch.Fetcher, fr *frontier.Frontier, outputDir, site string, maxPages int, opts ...Option) *Loop {
	l := &Loop{
		fetcher:         fetcher,
		frontier:        fr,
		outputDir:       outputDir,
		maxPages:        maxPages,
		site:            site,
		countEmptyPages: true,
		progress:        NopProgress{},
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Run seeds the frontier and crawls until the budget or the queue is
// exhausted. Seeds already visited in a prior run are rejected when they
// surface, which is what makes re-running with the same seeds resumable
// without re-fetching.
//
// The returned summary is valid even when err is non-nil (cancellation).
// The only fatal error is an output directory that cannot be created.
func (l *Loop) Run(ctx context.Context, seeds []string) (*model.CrawlSummary, error) {
	if err := os.MkdirAll(l.outputDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	l.frontier.Seed(seeds)

	summary := &model.CrawlSummary{
		Site:      l.site,
		StartedAt: time.Now(),
	}

	var runErr error

loop:
	for {
		select {
		case <-ctx.Done():
			summary.Reason = model.StopCancelled
			runErr = ctx.Err()
			break loop
		default:
		}

		if l.frontier.BudgetReached() {
			summary.Reason = model.StopBudgetReached
			break
		}

		pageURL, ok := l.frontier.Next()
		if !ok {
			summary.Reason = model.StopFrontierExhausted
			break
		}

		if err := l.step(ctx, pageURL, summary); err != nil {
			summary.Reason = model.StopOutputFailure
			runErr = err
			break
		}
		l.progress.Report(l.frontier.FileCount(), l.maxPages, l.frontier.QueueDepth())
	}

	summary.FinishedAt = time.Now()
	summary.TotalFiles = l.frontier.FileCount()
	summary.QueueDepth = l.frontier.QueueDepth()

	// The run record must outlive the crawl context: an interrupted run is
	// exactly what the history command needs to show.
	l.archiveRun(context.WithoutCancel(ctx), summary)

	return summary, runErr
}

// step crawls a single dequeued URL. A non-nil error means the run
// cannot make progress at all and must abort; per-URL failures are
// absorbed and return nil.
func (l *Loop) step(ctx context.Context, pageURL string, summary *model.CrawlSummary) error {
	if ok, reason := l.frontier.Admit(pageURL); !ok {
		l.logger.Debug("url rejected", "url", pageURL, "reason", string(reason))
		return nil
	}

	summary.Attempts++

	raw, err := l.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		l.logFetchError(pageURL, err)
		l.frontier.RecordFailure(pageURL)
		summary.Failures++
		return nil
	}

	doc, err := extract.ParseDocument(raw)
	if err != nil {
		// Unparsable input degrades to an empty page, never an error.
		doc = nil
	}
	page := extract.Extract(doc)
	blocks := extract.FilterBlocks(page.Blocks)

	if page.IsEmpty() && !l.countEmptyPages {
		l.logger.Debug("empty page discarded", "url", pageURL)
		return nil
	}

	fileNum := l.frontier.FileCount() + 1
	path, err := artifact.WriteFile(l.outputDir, fileNum, page.Title, blocks)
	if err != nil {
		l.logger.Error("artifact write failed", "url", pageURL, "error", err)
		l.frontier.RecordFailure(pageURL)
		summary.Failures++
		summary.PersistenceErrors++
		// A single bad filename is retryable; a directory that no longer
		// accepts any file is not. Grinding through the rest of the queue
		// would just log one error per pending URL.
		if !l.outputDirWritable() {
			return fmt.Errorf("output directory unusable: %w", err)
		}
		return nil
	}

	// State mutations are not rolled back on checkpoint failure; the
	// cost is bounded to re-fetching pages since the last good checkpoint.
	if err := l.frontier.RecordSuccess(pageURL, page.Links); err != nil {
		l.logger.Error("state checkpoint failed", "url", pageURL, "error", err)
		summary.PersistenceErrors++
	}

	summary.PagesWritten++
	headings, paragraphs := countBlocks(blocks)
	summary.Headings += headings
	summary.Paragraphs += paragraphs

	l.logger.Debug("page crawled",
		"url", pageURL,
		"title", page.Title,
		"blocks", len(blocks),
		"links", len(page.Links),
		"artifact", path,
	)

	l.archivePage(ctx, pageURL, page, blocks, path)
	return nil
}

// outputDirWritable reports whether the output directory still accepts
// new files.
func (l *Loop) outputDirWritable() bool {
	f, err := os.CreateTemp(l.outputDir, ".writecheck-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// logFetchError logs a fetch failure with its kind when available.
func (l *Loop) logFetchError(pageURL string, err error) {
	var fe *fetch.Error
	if errors.As(err, &fe) {
		l.logger.Warn("fetch failed",
			"url", pageURL,
			"kind", string(fe.Kind),
			"status", fe.StatusCode,
		)
		return
	}
	l.logger.Warn("fetch failed", "url", pageURL, "error", err)
}

// archivePage records a crawled page in the SQLite archive, best effort.
func (l *Loop) archivePage(ctx context.Context, pageURL string, page *model.PageResult, blocks []model.ContentBlock, path string) {
	if l.archive == nil {
		return
	}

	headings, paragraphs := countBlocks(blocks)
	_, err := l.archive.InsertPage(ctx, &database.PageRecord{
		URL:            pageURL,
		Site:           l.site,
		Title:          page.Title,
		Artifact:       path,
		HeadingCount:   headings,
		ParagraphCount: paragraphs,
		LinkCount:      len(page.Links),
	})
	if err != nil {
		l.logger.Warn("page archive insert failed", "url", pageURL, "error", err)
	}
}

// archiveRun records the finished run in the SQLite archive, best effort.
func (l *Loop) archiveRun(ctx context.Context, summary *model.CrawlSummary) {
	if l.archive == nil {
		return
	}
	if err := l.archive.InsertRun(ctx, summary); err != nil {
		l.logger.Warn("run archive insert failed", "error", err)
	}
}

// countBlocks tallies heading and paragraph blocks.
func countBlocks(blocks []model.ContentBlock) (headings, paragraphs int) {
	for _, b := range blocks {
		if b.IsHeading() {
			headings++
		} else {
			paragraphs++
		}
	}
	return headings, paragraphs
}
