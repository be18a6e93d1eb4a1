// Package crawl runs the crawl loop: it orchestrates fetch, extraction,
// content filtering, artifact writing, and frontier bookkeeping for one
// URL at a time until the page budget or the pending queue is exhausted.
//
// The loop is strictly sequential. Exactly one page is in flight at any
// moment and the only blocking point is the fetch itself, so the
// frontier needs no synchronization and every state checkpoint reflects
// a consistent view.
//
// Collaborators are injected as interfaces (Fetcher, Progress) so the
// loop is testable without a network or a terminal.
package crawl
