package model

import (
	"testing"
	"time"
)

// TestContentBlock tests the block constructors and predicates.
func TestContentBlock(t *testing.T) {
	t.Parallel()

	h := Heading(2, "Section")
	if !h.IsHeading() || h.IsParagraph() {
		t.Errorf("expected heading predicates, got %+v", h)
	}
	if h.Level != 2 || h.Text != "Section" {
		t.Errorf("unexpected heading fields: %+v", h)
	}

	p := Paragraph("body")
	if !p.IsParagraph() || p.IsHeading() {
		t.Errorf("expected paragraph predicates, got %+v", p)
	}
	if p.Level != 0 {
		t.Errorf("expected zero level for paragraph, got %d", p.Level)
	}
}

// TestPageResult tests the page-level helpers.
func TestPageResult(t *testing.T) {
	t.Parallel()

	t.Run("empty page", func(t *testing.T) {
		t.Parallel()

		p := &PageResult{}
		if p.HasTitle() {
			t.Error("expected no title")
		}
		if !p.IsEmpty() {
			t.Error("expected empty page")
		}
	})

	t.Run("page with only links is not empty", func(t *testing.T) {
		t.Parallel()

		p := &PageResult{Links: []string{"/wiki/A"}}
		if p.IsEmpty() {
			t.Error("expected page with links to count as non-empty")
		}
	})

	t.Run("count kinds", func(t *testing.T) {
		t.Parallel()

		p := &PageResult{Blocks: []ContentBlock{
			Heading(1, "a"),
			Paragraph("b"),
			Paragraph("c"),
		}}
		headings, paragraphs := p.CountKinds()
		if headings != 1 || paragraphs != 2 {
			t.Errorf("expected 1 heading and 2 paragraphs, got %d and %d", headings, paragraphs)
		}
	})
}

// TestCrawlSummary tests the derived summary metrics.
func TestCrawlSummary(t *testing.T) {
	t.Parallel()

	t.Run("elapsed", func(t *testing.T) {
		t.Parallel()

		started := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
		s := &CrawlSummary{StartedAt: started, FinishedAt: started.Add(90 * time.Second)}
		if s.Elapsed() != 90*time.Second {
			t.Errorf("expected 90s elapsed, got %v", s.Elapsed())
		}
	})

	t.Run("success rate", func(t *testing.T) {
		t.Parallel()

		s := &CrawlSummary{Attempts: 10, PagesWritten: 8}
		if s.SuccessRate() != 0.8 {
			t.Errorf("expected 0.8, got %v", s.SuccessRate())
		}
	})

	t.Run("success rate with no attempts", func(t *testing.T) {
		t.Parallel()

		s := &CrawlSummary{}
		if s.SuccessRate() != 0 {
			t.Errorf("expected 0, got %v", s.SuccessRate())
		}
	})
}
