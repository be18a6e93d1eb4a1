package model

// PageResult holds everything extracted from a single fetched page.
// It is produced once per successful fetch and consumed by the crawl
// loop; it is not retained afterwards.
type PageResult struct {
	// Title is the article title, empty when the page carries no
	// title marker.
	Title string `json:"title,omitempty"`

	// Blocks are the extracted content blocks in document order.
	Blocks []ContentBlock `json:"blocks"`

	// Links are the raw href values discovered inside paragraphs,
	// verbatim and in document order. Normalization and scoping happen
	// later in the frontier.
	Links []string `json:"links"`
}

// HasTitle returns true if a title was extracted.
func (p *PageResult) HasTitle() bool {
	return p.Title != ""
}

// IsEmpty returns true if extraction found no content container or the
// container held nothing usable.
func (p *PageResult) IsEmpty() bool {
	return len(p.Blocks) == 0 && len(p.Links) == 0
}

// CountKinds returns the number of heading and paragraph blocks.
func (p *PageResult) CountKinds() (headings, paragraphs int) {
	for _, b := range p.Blocks {
		switch b.Kind {
		case KindHeading:
			headings++
		case KindParagraph:
			paragraphs++
		}
	}
	return headings, paragraphs
}
