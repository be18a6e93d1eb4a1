// Package model defines the core value types shared across wikicrawl:
// extracted content blocks, per-page extraction results, and crawl run
// summaries. These types carry no behavior beyond small helpers and are
// safe to pass between packages by value.
package model
