package crawl

import "log/slog"

// Progress observes crawl advancement. Report is invoked after every
// attempted URL, successful or not.
type Progress interface {
	// Report receives the number of pages completed so far (cumulative,
	// including prior runs), the total page budget, and the current
	// pending queue depth.
	Report(completed, budget, queueDepth int)
}

// NopProgress discards progress reports.
type NopProgress struct{}

// Report implements Progress.
func (NopProgress) Report(completed, budget, queueDepth int) {}

// LogProgress reports progress through a structured logger at debug
// level, useful for long unattended runs.
type LogProgress struct {
	// Logger receives the progress records.
	Logger *slog.Logger
}

// Report implements Progress.
func (p LogProgress) Report(completed, budget, queueDepth int) {
	p.Logger.Debug("crawl progress",
		"completed", completed,
		"budget", budget,
		"queueDepth", queueDepth,
	)
}

// ProgressFunc adapts a function to the Progress interface.
type ProgressFunc func(completed, budget, queueDepth int)

// Report implements Progress.
func (f ProgressFunc) Report(completed, budget, queueDepth int) {
	f(completed, budget, queueDepth)
}
