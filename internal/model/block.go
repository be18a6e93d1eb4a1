package model

// BlockKind distinguishes the two kinds of content block an article
// body is made of.
type BlockKind string

// Block kinds in extracted article content.
const (
	// KindHeading is a section heading (h1-h6).
	KindHeading BlockKind = "heading"

	// KindParagraph is a body paragraph.
	KindParagraph BlockKind = "paragraph"
)

// ContentBlock is one unit of extracted article content, either a heading
// or a paragraph, in document order.
//
// Design decision: We use a single tagged struct rather than an interface
// with two implementations because:
//  1. Blocks are plain data; there is no per-kind behavior to dispatch on
//  2. Slices of small structs are cheaper than slices of interface values
//  3. JSON round-trips are trivial without custom marshalers
type ContentBlock struct {
	// Kind is the block kind (heading or paragraph).
	Kind BlockKind `json:"kind"`

	// Level is the heading level, 1 through 6. Zero for paragraphs.
	Level int `json:"level,omitempty"`

	// Text is the trimmed text content of the block.
	Text string `json:"text"`
}

// Heading constructs a heading block.
func Heading(level int, text string) ContentBlock {
	return ContentBlock{Kind: KindHeading, Level: level, Text: text}
}

// Paragraph constructs a paragraph block.
func Paragraph(text string) ContentBlock {
	return ContentBlock{Kind: KindParagraph, Text: text}
}

// IsHeading returns true if the block is a heading.
func (b ContentBlock) IsHeading() bool {
	return b.Kind == KindHeading
}

// IsParagraph returns true if the block is a paragraph.
func (b ContentBlock) IsParagraph() bool {
	return b.Kind == KindParagraph
}
