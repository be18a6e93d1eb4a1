// Package frontier owns the crawl frontier: the set of visited URLs, the
// FIFO queue of pending URLs, and the artifact counter that enforces the
// page budget.
//
// # Components
//
//   - State: the durable part (visited set + file counter), persisted as
//     JSON after every successful step so a run can resume
//   - Frontier: the state machine deciding whether a URL may be crawled
//     and absorbing the outcome of each attempt
//   - NormalizeLink / InScope: link normalization and the site-scope
//     predicate applied to discovered links
//
// The frontier is the single owner of its state; no other component
// mutates the visited set, the queue, or the counter. The crawl is
// sequential by contract, so no locking is needed.
package frontier
