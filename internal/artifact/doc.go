// Package artifact serializes filtered article content to the per-page
// text files the crawl produces.
//
// The on-disk format is stable and deliberately simple: a title header,
// a separator rule, then one block per stanza with headings rendered as
// markdown-style hash prefixes. File names combine the zero-padded
// artifact counter with a filesystem-sanitized title, so two successful
// crawls can never collide.
package artifact
