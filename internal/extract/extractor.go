package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/wikicrawl/wikicrawl/internal/model"
)

// Structural markers identifying the article parts on wiki pages.
const (
	// TitleClass marks the span holding the article's primary title.
	TitleClass = "mw-page-title-main"

	// ContentClass marks the div holding the article body.
	ContentClass = "mw-content-ltr"
)

// ParseDocument parses raw markup into a document tree.
// x/net/html recovers from malformed input, so an error here is rare;
// callers treat it the same as an empty document.
func ParseDocument(raw string) (*html.Node, error) {
	return html.Parse(strings.NewReader(raw))
}

// Extract pulls the title, content blocks, and raw links out of a
// document. Blocks and links preserve document order. A document without
// the content container yields an empty (non-nil) result, never an error.
func Extract(doc *html.Node) *model.PageResult {
	result := &model.PageResult{
		Blocks: make([]model.ContentBlock, 0),
		Links:  make([]string, 0),
	}
	if doc == nil {
		return result
	}

	if span := findFirstByClass(doc, "span", TitleClass); span != nil {
		result.Title = textContent(span)
	}

	container := findFirstByClass(doc, "div", ContentClass)
	if container == nil {
		return result
	}

	// One pre-order walk over the container, two levels deep. Pre-order
	// visits each element before its descendants, which is exactly
	// document order, so candidates never need re-sorting by position.
	//
	// Candidate rules: paragraphs must be direct children of the
	// container; headings may sit one level deeper (wiki skins wrap
	// section headings in div containers).
	for child := container.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}

		switch {
		case child.Data == "p":
			extractParagraph(child, result)
		case headingLevel(child.Data) > 0:
			appendHeading(child, result)
		}

		for grand := child.FirstChild; grand != nil; grand = grand.NextSibling {
			if grand.Type == html.ElementNode && headingLevel(grand.Data) > 0 {
				appendHeading(grand, result)
			}
		}
	}

	return result
}

// extractParagraph appends the paragraph's anchor hrefs (verbatim, in
// document order) and then, if the trimmed text is non-empty, the
// paragraph block itself.
func extractParagraph(p *html.Node, result *model.PageResult) {
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); href != "" {
				result.Links = append(result.Links, href)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(p)

	if text := textContent(p); text != "" {
		result.Blocks = append(result.Blocks, model.Paragraph(text))
	}
}

// appendHeading appends a heading block for an h1-h6 element.
func appendHeading(h *html.Node, result *model.PageResult) {
	result.Blocks = append(result.Blocks, model.Heading(headingLevel(h.Data), textContent(h)))
}

// headingLevel returns 1-6 for h1-h6 tag names, zero otherwise.
func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// findFirstByClass finds the first element with the given tag carrying
// the class token, in document order.
func findFirstByClass(n *html.Node, tag, class string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirstByClass(c, tag, class); found != nil {
			return found
		}
	}
	return nil
}

// hasClass reports whether the element's class attribute contains the
// given token. Class attributes hold space-separated token lists, so a
// substring match would be wrong.
func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(getAttr(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent returns the trimmed concatenation of all text nodes in the
// element's subtree, matching what a DOM textContent lookup would yield.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
