// Package compare holds the transient side-by-side candidate selection.
package compare

import (
	"sort"

	"github.com/gpereira/lens/internal/analysis"
)

// Set is an in-memory, id-deduplicated selection of analysis results. It is
// never persisted; membership lasts for the session only.
type Set struct {
	items []analysis.Result
}

func New() *Set {
	return &Set{}
}

// Add inserts the result unless an entry with the same id is already
// present. It reports whether the set changed.
func (s *Set) Add(r analysis.Result) bool {
	for _, existing := range s.items {
		if existing.ID == r.ID {
			return false
		}
	}
	s.items = append(s.items, r)
	return true
}

// Remove deletes the entry with the matching id, reporting whether it was
// present.
func (s *Set) Remove(id int64) bool {
	for i, r := range s.items {
		if r.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the set.
func (s *Set) Clear() {
	s.items = nil
}

func (s *Set) Len() int { return len(s.items) }

// View returns the members sorted by score descending. The sort is stable:
// equal scores keep their insertion order. The first element is the "best"
// candidate for display purposes; that flag is derived here, never stored.
func (s *Set) View() []analysis.Result {
	out := make([]analysis.Result, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
