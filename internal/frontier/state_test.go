package frontier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadState tests state file loading.
func TestLoadState(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty state", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "crawl_state.json")
		s, err := LoadState(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Visited) != 0 || s.FileCount != 0 {
			t.Errorf("expected empty state, got %d visited, file count %d", len(s.Visited), s.FileCount)
		}
	})

	t.Run("loads visited set and counter", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "crawl_state.json")
		raw := `{"visited": ["https://tr.wikipedia.org/wiki/A", "https://tr.wikipedia.org/wiki/B"], "file_count": 2}`
		if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
			t.Fatal(err)
		}

		s, err := LoadState(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.FileCount != 2 {
			t.Errorf("expected file count 2, got %d", s.FileCount)
		}
		if !s.Visited["https://tr.wikipedia.org/wiki/A"] || !s.Visited["https://tr.wikipedia.org/wiki/B"] {
			t.Errorf("expected both URLs visited, got %v", s.Visited)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "crawl_state.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadState(path); err == nil {
			t.Error("expected error for malformed state file, got nil")
		}
	})

	t.Run("negative file count is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "crawl_state.json")
		if err := os.WriteFile(path, []byte(`{"visited": [], "file_count": -1}`), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadState(path); err == nil {
			t.Error("expected error for negative file_count, got nil")
		}
	})
}

// TestStateSave tests checkpoint writing.
func TestStateSave(t *testing.T) {
	t.Parallel()

	t.Run("round trip preserves the state", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "crawl_state.json")
		s := NewState()
		s.Visited["https://tr.wikipedia.org/wiki/A"] = true
		s.FileCount = 1

		if err := s.Save(path); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := LoadState(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.FileCount != 1 || !loaded.Visited["https://tr.wikipedia.org/wiki/A"] {
			t.Errorf("round trip lost data: %+v", loaded)
		}
	})

	t.Run("on-disk format uses the fixed field names", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "crawl_state.json")
		s := NewState()
		s.Visited["https://tr.wikipedia.org/wiki/B"] = true
		s.Visited["https://tr.wikipedia.org/wiki/A"] = true
		s.FileCount = 2

		if err := s.Save(path); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			t.Fatalf("state file is not valid JSON: %v", err)
		}
		if _, ok := raw["visited"]; !ok {
			t.Error("expected 'visited' field in state file")
		}
		if _, ok := raw["file_count"]; !ok {
			t.Error("expected 'file_count' field in state file")
		}

		var urls []string
		if err := json.Unmarshal(raw["visited"], &urls); err != nil {
			t.Fatalf("visited is not a string array: %v", err)
		}
		if len(urls) != 2 || urls[0] != "https://tr.wikipedia.org/wiki/A" {
			t.Errorf("expected sorted visited URLs, got %v", urls)
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "crawl_state.json")
		if err := NewState().Save(path); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected state file to exist: %v", err)
		}
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "crawl_state.json")
		if err := NewState().Save(path); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].Name() != "crawl_state.json" {
			t.Errorf("expected only the state file, got %v", entries)
		}
	})
}
