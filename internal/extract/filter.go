package extract

import "github.com/wikicrawl/wikicrawl/internal/model"

// FilterBlocks drops headings that introduce no content: a heading is
// kept only if a paragraph occurs after it and before the next heading
// (or end of list). Paragraphs are always kept. This removes things like
// a trailing "See also" heading with no body under it.
//
// The function is pure; the input slice is never modified.
func FilterBlocks(blocks []model.ContentBlock) []model.ContentBlock {
	filtered := make([]model.ContentBlock, 0, len(blocks))

	for i, b := range blocks {
		if b.IsParagraph() {
			filtered = append(filtered, b)
			continue
		}
		if headingHasBody(blocks, i) {
			filtered = append(filtered, b)
		}
	}

	return filtered
}

// headingHasBody reports whether a paragraph follows blocks[i] strictly
// before the next heading.
func headingHasBody(blocks []model.ContentBlock, i int) bool {
	for _, next := range blocks[i+1:] {
		switch {
		case next.IsParagraph():
			return true
		case next.IsHeading():
			return false
		}
	}
	return false
}
