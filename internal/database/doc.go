// Package database provides the SQLite page archive for wikicrawl.
//
// The archive records every page the crawler wrote (URL, title, block
// counts, artifact path) and one row per crawl run, powering the
// history command. It is best-effort storage: the JSON frontier state
// file remains the durability source of truth for resumption, and an
// archive failure never stops a crawl.
//
// Design decision: We use SQLite (via modernc.org/sqlite) because:
//  1. No external dependencies - the archive is a single file
//  2. CGO-free implementation allows easy cross-compilation
//  3. Sufficient performance for a sequential crawler
//  4. WAL mode provides good concurrent read performance for queries
//     while a crawl is writing
package database
