package frontier

// RejectReason explains why the frontier refused a URL.
type RejectReason string

// Reject reasons returned by Admit.
const (
	// RejectVisited means the URL was already crawled successfully.
	RejectVisited RejectReason = "visited"

	// RejectBudget means the page budget is exhausted.
	RejectBudget RejectReason = "budget"

	// RejectScope means the URL's host fails the site-scope predicate.
	RejectScope RejectReason = "scope"

	// RejectRetries means the URL failed too many times this run.
	RejectRetries RejectReason = "retries"
)

// Frontier decides what gets crawled next and absorbs the outcome of
// every attempt. It exclusively owns the durable State, the in-memory
// pending queue, and the per-URL failure ledger.
type Frontier struct {
	// state is the durable visited set and artifact counter.
	state *State

	// statePath is where state checkpoints are written.
	statePath string

	// queue is the FIFO of pending URLs. Entries are not deduplicated at
	// insert time; duplicates are caught against the visited set when
	// they reach the front.
	queue []string

	// failures counts failed fetch attempts per URL this run. Failures
	// never mark a URL visited, so this ledger is what stops a broken
	// URL from being retried forever. It is deliberately not persisted:
	// a restart gives failed URLs a fresh chance.
	failures map[string]int

	// maxPages is the cumulative artifact budget.
	maxPages int

	// maxRetries bounds failed attempts per URL.
	maxRetries int

	// scopeHost is the substring a URL's host must contain.
	scopeHost string
}

// Options configures a Frontier.
type Options struct {
	// StatePath is the state file location.
	StatePath string

	// MaxPages is the page budget. Must be positive.
	MaxPages int

	// MaxRetries bounds failed attempts per URL. Must be positive.
	MaxRetries int

	// ScopeHost is the site-scope substring.
	ScopeHost string
}

// New creates a Frontier around previously loaded state. Use LoadState
// to obtain the state (empty on first run).
func New(state *State, opts Options) *Frontier {
	return &Frontier{
		state:      state,
		statePath:  opts.StatePath,
		queue:      make([]string, 0),
		failures:   make(map[string]int),
		maxPages:   opts.MaxPages,
		maxRetries: opts.MaxRetries,
		scopeHost:  opts.ScopeHost,
	}
}

// Seed appends start URLs to the pending queue. Seeds are not checked
// against the visited set here; dedup happens lazily when they are
// dequeued, which is what makes re-seeding a resumed run idempotent.
func (f *Frontier) Seed(urls []string) {
	f.queue = append(f.queue, urls...)
}

// Next pops the front of the pending queue. ok is false when the queue
// is empty.
func (f *Frontier) Next() (url string, ok bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url = f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// QueueDepth returns the number of pending URLs.
func (f *Frontier) QueueDepth() int {
	return len(f.queue)
}

// BudgetReached reports whether the artifact budget is exhausted.
func (f *Frontier) BudgetReached() bool {
	return f.state.FileCount >= f.maxPages
}

// FileCount returns the cumulative artifact counter.
func (f *Frontier) FileCount() int {
	return f.state.FileCount
}

// Visited reports whether a URL has been successfully crawled.
func (f *Frontier) Visited(url string) bool {
	return f.state.Visited[url]
}

// Admit decides whether a dequeued URL may be crawled. A rejected URL
// causes no state change.
func (f *Frontier) Admit(url string) (bool, RejectReason) {
	switch {
	case f.state.Visited[url]:
		return false, RejectVisited
	case f.BudgetReached():
		return false, RejectBudget
	case !InScope(url, f.scopeHost):
		return false, RejectScope
	case f.failures[url] >= f.maxRetries:
		return false, RejectRetries
	}
	return true, ""
}

// RecordFailure notes a failed fetch attempt. The URL stays unvisited
// and keeps none of the budget; after MaxRetries failures Admit refuses
// it for the rest of the run.
func (f *Frontier) RecordFailure(url string) {
	f.failures[url]++
}

// RecordSuccess absorbs a successful crawl of url: the artifact counter
// advances, the URL becomes visited, each discovered link is normalized,
// scoped, and enqueued unless already visited, and the state is
// checkpointed to disk.
//
// The caller must have written the artifact first, named after
// FileCount()+1. A checkpoint failure is returned but the in-memory
// state is not rolled back; the cost is only that a crash before the
// next successful checkpoint may re-fetch this page.
func (f *Frontier) RecordSuccess(url string, links []string) error {
	f.state.FileCount++
	f.state.Visited[url] = true

	for _, href := range links {
		normalized, ok := NormalizeLink(href, url)
		if !ok {
			continue
		}
		if !InScope(normalized, f.scopeHost) {
			continue
		}
		if f.state.Visited[normalized] {
			continue
		}
		// Duplicates within the queue itself are tolerated; they are
		// rejected as visited when they surface.
		f.queue = append(f.queue, normalized)
	}

	return f.state.Save(f.statePath)
}
