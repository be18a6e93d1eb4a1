// Package fetch provides the HTTP fetching capability for wikicrawl.
//
// The crawl loop depends on the Fetcher interface, not the concrete
// client, so tests can substitute canned responses. Fetch failures are
// reported as typed errors (HTTP status, transport, decode) so the loop
// can log them precisely while always continuing with the next URL.
package fetch
