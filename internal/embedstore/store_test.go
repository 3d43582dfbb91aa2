package embedstore

import (
	"os"
	"path/filepath"
	"testing"
)

func unit(x, y float32) []float32 { return []float32{x, y} }

func testStore() *Store {
	return New([]Entry{
		{ID: "a", Vector: unit(1, 0), Text: "A"},
		{ID: "b", Vector: unit(0.9, 0.1), Text: "B"},
		{ID: "c", Vector: unit(0.5, 0.5), Text: "C"},
		{ID: "d", Vector: unit(0, 1), Text: "D"},
	})
}

func TestFindRelevantOrdering(t *testing.T) {
	s := testStore()
	matches := s.FindRelevant(unit(1, 0), 10, 0)
	if len(matches) != 4 {
		t.Fatalf("got %d matches, want 4", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Fatalf("matches not in descending score order: %v", matches)
		}
	}
	if matches[0].Text != "A" {
		t.Fatalf("best match = %q, want A", matches[0].Text)
	}
}

func TestFindRelevantLimit(t *testing.T) {
	s := testStore()
	matches := s.FindRelevant(unit(1, 0), 2, 0)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Text != "A" || matches[1].Text != "B" {
		t.Fatalf("top-2 = %q, %q; want A, B", matches[0].Text, matches[1].Text)
	}
}

func TestFindRelevantFloor(t *testing.T) {
	s := testStore()
	matches := s.FindRelevant(unit(1, 0), 10, 0.9)
	for _, m := range matches {
		if m.Score < 0.9 {
			t.Fatalf("match %q scored %v below floor", m.Text, m.Score)
		}
	}
	if len(matches) == 0 {
		t.Fatal("expected at least the identical entry above the floor")
	}
}

func TestFindRelevantEmpty(t *testing.T) {
	s := testStore()
	matches := s.FindRelevant(unit(1, 0), 10, 1.1)
	if matches == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(matches) != 0 {
		t.Fatalf("got %d matches, want none above an impossible floor", len(matches))
	}

	var nilStore *Store
	if got := nilStore.FindRelevant(unit(1, 0), 5, 0); len(got) != 0 {
		t.Fatal("nil store must return no matches")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embedding.json")
	content := `{
  "entries": [
    {"id": "1", "embedding": {"vector": [1.0, 0.0]}, "embedded": {"text": "X is Y."}},
    {"id": "2", "embedding": {"vector": [0.0, 1.0]}, "embedded": {"text": "Z is W."}}
  ]
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	matches := s.FindRelevant(unit(1, 0), 5, 0.65)
	if len(matches) != 1 || matches[0].Text != "X is Y." {
		t.Fatalf("unexpected matches: %v", matches)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file: want error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed file: want error")
	}
}

func TestCosineZeroNorm(t *testing.T) {
	if got := cosine([]float32{0, 0}, []float32{1, 1}); got != 0 {
		t.Fatalf("zero-norm cosine = %v, want 0", got)
	}
	if got := cosine([]float32{1}, []float32{1, 2}); got != 0 {
		t.Fatalf("length-mismatch cosine = %v, want 0", got)
	}
}
