package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/wikicrawl/wikicrawl/internal/model"
)

// separatorWidth is the width of the rule under the title header.
const separatorWidth = 50

// fallbackStem names artifacts for pages without a title.
const fallbackStem = "untitled"

// Write serializes the title and filtered blocks to w.
//
// Format: a "Title: <title>" header line, a rule of 50 '=' characters, a
// blank line, then each block followed by a blank line; headings carry a
// '#' per level and a space before the text.
func Write(w io.Writer, title string, blocks []model.ContentBlock) error {
	var sb strings.Builder

	sb.WriteString("Title: ")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", separatorWidth))
	sb.WriteString("\n\n")

	for _, b := range blocks {
		if b.IsHeading() {
			sb.WriteString(strings.Repeat("#", b.Level))
			sb.WriteString(" ")
		}
		sb.WriteString(b.Text)
		sb.WriteString("\n\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

// FileName builds the artifact file name for the given counter value and
// title: a zero-padded counter, an underscore, the sanitized title, and
// a .txt suffix.
func FileName(fileCount int, title string) string {
	return fmt.Sprintf("%03d_%s.txt", fileCount, SanitizeTitle(title))
}

// SanitizeTitle makes a title safe for use as a file name stem. The
// title is NFC-normalized first so composed and decomposed forms of the
// same accented characters produce identical names, then spaces and path
// separators become underscores. An empty title falls back to "untitled".
func SanitizeTitle(title string) string {
	title = strings.TrimSpace(norm.NFC.String(title))
	if title == "" {
		return fallbackStem
	}

	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"\\", "_",
	)
	return replacer.Replace(title)
}

// WriteFile writes the artifact into dir and returns its path. An
// existing file at the same path is overwritten. I/O failures surface to
// the caller; retries are the caller's decision.
func WriteFile(dir string, fileCount int, title string, blocks []model.ContentBlock) (string, error) {
	path := filepath.Join(dir, FileName(fileCount, title))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // Path is derived from sanitized title
	if err != nil {
		return "", fmt.Errorf("failed to create artifact file: %w", err)
	}

	if err := Write(f, title, blocks); err != nil {
		_ = f.Close()
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close artifact file: %w", err)
	}
	return path, nil
}
