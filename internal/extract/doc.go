// Package extract turns a parsed HTML document into structured article
// content: a title, an ordered list of heading/paragraph blocks, and an
// ordered list of raw outbound links.
//
// # Architecture
//
//   - ParseDocument: raw markup -> *html.Node tree
//   - Extract: document tree -> model.PageResult
//   - FilterBlocks: drops headings that introduce no paragraph
//
// Design decision: We use golang.org/x/net/html rather than regex or a
// CSS-selector library because:
//  1. It correctly handles malformed HTML common on the web
//  2. A single pre-order walk gives document order for free, so mixed
//     paragraph/heading candidates never need re-sorting by position
//  3. The two structural markers we match (title span, content div) are
//     simple class lookups that don't justify a selector engine
//
// Extraction never fails: a malformed or empty document simply yields an
// empty result.
package extract
