package model

import "time"

// StopReason explains why a crawl run ended.
type StopReason string

// Stop reasons reported by the crawl loop. Budget exhaustion is reported
// distinctly from running out of URLs so operators can tell a capped run
// from a fully explored site.
const (
	// StopBudgetReached means the page budget was hit with URLs still queued.
	StopBudgetReached StopReason = "budget_reached"

	// StopFrontierExhausted means the pending queue drained before the budget.
	StopFrontierExhausted StopReason = "frontier_exhausted"

	// StopCancelled means the run was interrupted (signal or context).
	StopCancelled StopReason = "cancelled"

	// StopOutputFailure means the artifact output directory stopped
	// accepting writes and the run could not continue.
	StopOutputFailure StopReason = "output_failure"
)

// CrawlSummary aggregates the outcome of one crawl run. It feeds the
// report writers and the run archive.
type CrawlSummary struct {
	// Site is the scope host substring the run was bound to.
	Site string `json:"site"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run stopped.
	FinishedAt time.Time `json:"finished_at"`

	// PagesWritten is the number of artifacts written during this run.
	// It excludes pages written by prior runs that this run resumed from.
	PagesWritten int `json:"pages_written"`

	// TotalFiles is the cumulative artifact count including prior runs.
	TotalFiles int `json:"total_files"`

	// Attempts is the number of dequeued URLs this run acted on.
	Attempts int `json:"attempts"`

	// Failures is the number of attempts that failed to fetch or decode.
	Failures int `json:"failures"`

	// Headings and Paragraphs count blocks written across all artifacts
	// in this run.
	Headings   int `json:"headings"`
	Paragraphs int `json:"paragraphs"`

	// QueueDepth is the pending queue length at stop time.
	QueueDepth int `json:"queue_depth"`

	// Reason tells why the run stopped.
	Reason StopReason `json:"stop_reason"`

	// PersistenceErrors counts state or archive writes that failed.
	// Non-zero values mean the next resume may re-fetch recent pages.
	PersistenceErrors int `json:"persistence_errors,omitempty"`
}

// Elapsed returns the wall-clock duration of the run.
func (s *CrawlSummary) Elapsed() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// SuccessRate returns the fraction of attempts that produced an artifact,
// or zero when nothing was attempted.
func (s *CrawlSummary) SuccessRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.PagesWritten) / float64(s.Attempts)
}
