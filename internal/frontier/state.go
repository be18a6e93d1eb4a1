package frontier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// State is the durable part of the frontier: which URLs have been
// successfully crawled, and how many artifacts exist on disk.
//
// Invariants: Visited only grows, and FileCount equals the number of
// artifacts written across this and all prior runs. Both are updated
// only after a successful write, so a crash loses at most the in-flight
// URL.
type State struct {
	// Visited holds every successfully crawled URL.
	Visited map[string]bool

	// FileCount is the cumulative number of artifacts written.
	FileCount int
}

// stateFile is the on-disk JSON shape. The format is a fixed external
// contract: {"visited": [...], "file_count": N}.
type stateFile struct {
	Visited   []string `json:"visited"`
	FileCount int      `json:"file_count"`
}

// NewState creates an empty State.
func NewState() *State {
	return &State{Visited: make(map[string]bool)}
}

// LoadState reads the state file at path. A missing file yields an empty
// state; a present but unreadable or malformed file is an error, because
// silently restarting from scratch would re-fetch everything.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path) //nolint:gosec // State path comes from configuration
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
	}
	if sf.FileCount < 0 {
		return nil, fmt.Errorf("state file %s: negative file_count %d", path, sf.FileCount)
	}

	s := NewState()
	s.FileCount = sf.FileCount
	for _, u := range sf.Visited {
		s.Visited[u] = true
	}
	return s, nil
}

// Save writes the state to path. The write goes through a temp file and
// rename so a crash mid-write never corrupts the previous checkpoint.
// Visited URLs are sorted to keep the file diff-friendly.
func (s *State) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	sf := stateFile{
		Visited:   make([]string, 0, len(s.Visited)),
		FileCount: s.FileCount,
	}
	for u := range s.Visited {
		sf.Visited = append(sf.Visited, u)
	}
	sort.Strings(sf.Visited)

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
