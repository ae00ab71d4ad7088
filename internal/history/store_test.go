package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gpereira/lens/internal/analysis"
)

func testResult(id int64, name string, score int) analysis.Result {
	return analysis.Result{
		ID:         id,
		Name:       name,
		Role:       "Backend",
		Date:       "12/05/2026",
		Score:      score,
		Verdict:    analysis.VerdictGo,
		Title:      "ok",
		Summary:    "ok",
		Subscores:  []analysis.Subscore{},
		Strengths:  []string{},
		Gaps:       []string{},
		Blindspots: []analysis.Blindspot{},
		Questions:  []string{},
	}
}

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	return s
}

func TestStoreRoundTripsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")

	s := openTestStore(t, path)
	for i, name := range []string{"Ana", "Bruno", "Carla"} {
		if err := s.Append(testResult(int64(i+1), name, 50+i)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := s.Remove(2); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Simulate a restart.
	reopened := openTestStore(t, path)

	got := reopened.All()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("expected newest-first order [3 1], got [%d %d]", got[0].ID, got[1].ID)
	}
	if got[0].Name != "Carla" {
		t.Fatalf("unexpected entry: %+v", got[0])
	}
}

func TestStoreAppendPrepends(t *testing.T) {
	t.Parallel()

	s := openTestStore(t, filepath.Join(t.TempDir(), "history.json"))

	s.Append(testResult(1, "Ana", 50))
	s.Append(testResult(2, "Bruno", 60))

	got := s.All()
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("expected newest first, got [%d %d]", got[0].ID, got[1].ID)
	}
}

func TestStoreRemoveKeepsOrder(t *testing.T) {
	t.Parallel()

	s := openTestStore(t, filepath.Join(t.TempDir(), "history.json"))

	// Insertion order 1,2,3 displays as [3 2 1].
	for id := int64(1); id <= 3; id++ {
		s.Append(testResult(id, "X", 50))
	}

	if err := s.Remove(2); err != nil {
		t.Fatalf("remove: %v", err)
	}

	got := s.All()
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("expected [3 1], got %+v", got)
	}
}

func TestStoreRemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	s := openTestStore(t, filepath.Join(t.TempDir(), "history.json"))
	s.Append(testResult(1, "Ana", 50))

	if err := s.Remove(99); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected store untouched, got %d entries", s.Len())
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	s := openTestStore(t, path)
	s.Append(testResult(1, "Ana", 50))

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if reopened := openTestStore(t, path); reopened.Len() != 0 {
		t.Fatalf("expected empty store after clear, got %d", reopened.Len())
	}
}

func TestStoreCorruptFileFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	s := openTestStore(t, path)
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", s.Len())
	}

	// The store must stay usable after corruption.
	if err := s.Append(testResult(1, "Ana", 50)); err != nil {
		t.Fatalf("append after corruption: %v", err)
	}
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	s := openTestStore(t, filepath.Join(t.TempDir(), "missing", "history.json"))
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", s.Len())
	}
}

func TestStorePersistsEmptyAsArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	s := openTestStore(t, path)
	s.Append(testResult(1, "Ana", 50))
	s.Clear()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", data)
	}
}
