// Package embedstore holds the pre-built embedding store the benchmark
// retrieves context from. The store is loaded once from its serialized
// form and is read-only for the rest of the run.
package embedstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Entry is one embedded text segment.
type Entry struct {
	ID     string
	Vector []float32
	Text   string
}

// Match is a retrieved segment with its relevance score, ordered by
// descending score in retrieval results.
type Match struct {
	Score float64
	Text  string
}

// Store is an in-memory embedding store searched by brute-force cosine
// similarity.
type Store struct {
	entries []Entry
}

// Serialized file shape produced by the external ingestion step.
type storeFile struct {
	Entries []struct {
		ID        string `json:"id"`
		Embedding struct {
			Vector []float32 `json:"vector"`
		} `json:"embedding"`
		Embedded struct {
			Text string `json:"text"`
		} `json:"embedded"`
	} `json:"entries"`
}

// New creates a store from entries. Used by ingestion-side tooling and tests.
func New(entries []Entry) *Store {
	return &Store{entries: entries}
}

// LoadFile reads a serialized store from disk.
func LoadFile(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("embedstore: read %q: %w", path, err)
	}

	var f storeFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("embedstore: parse %q: %w", path, err)
	}

	entries := make([]Entry, 0, len(f.Entries))
	for _, e := range f.Entries {
		entries = append(entries, Entry{
			ID:     e.ID,
			Vector: e.Embedding.Vector,
			Text:   e.Embedded.Text,
		})
	}
	return &Store{entries: entries}, nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// FindRelevant returns at most maxResults matches scoring at least
// minScore, ordered by descending score. An empty result is not an
// error: the caller proceeds with empty context.
func (s *Store) FindRelevant(query []float32, maxResults int, minScore float64) []Match {
	if s == nil || len(s.entries) == 0 || maxResults <= 0 {
		return []Match{}
	}

	matches := make([]Match, 0, len(s.entries))
	for _, e := range s.entries {
		score := cosine(query, e.Vector)
		if score < minScore {
			continue
		}
		matches = append(matches, Match{Score: score, Text: e.Text})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}
