// Package history persists completed analyses across sessions.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gpereira/lens/internal/analysis"
)

// Store holds the durable, newest-first log of analysis results. It is
// backed by a single JSON array file; every mutation persists before
// returning, so in-memory and on-disk state never diverge.
type Store struct {
	path   string
	logger *zap.Logger
	items  []analysis.Result
}

// Open loads the store from path. A missing file yields an empty store, and
// so does a file that no longer parses: corruption must never take the
// application down, it only costs the old entries.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history file %q: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.items); err != nil {
		logger.Debug("discarding unparseable history file",
			zap.String("path", path),
			zap.Error(err),
		)
		s.items = nil
	}

	return s, nil
}

// Append prepends the result and persists. Newest entries come first.
func (s *Store) Append(r analysis.Result) error {
	s.items = append([]analysis.Result{r}, s.items...)
	return s.persist()
}

// Remove deletes the entry with the matching id. Removing an absent id is a
// no-op and does not touch the file.
func (s *Store) Remove(id int64) error {
	for i, r := range s.items {
		if r.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Clear empties the store and persists. Interactive callers are expected to
// confirm with the user before calling.
func (s *Store) Clear() error {
	s.items = nil
	return s.persist()
}

// Get returns the entry with the matching id.
func (s *Store) Get(id int64) (analysis.Result, bool) {
	for _, r := range s.items {
		if r.ID == id {
			return r, true
		}
	}
	return analysis.Result{}, false
}

// All returns the entries in display order, newest first.
func (s *Store) All() []analysis.Result {
	out := make([]analysis.Result, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	items := s.items
	if items == nil {
		// An empty store still serializes as an array, not null.
		items = []analysis.Result{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing history file %q: %w", s.path, err)
	}

	return nil
}
