// Package dataset loads the benchmark dataset and exposes its documents
// and questions without reshaping the underlying structure, so the result
// file can mirror the dataset exactly.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset is the decoded dataset file. Nodes stay generic maps: keys the
// harness does not recognize must survive the round trip to the result
// file untouched.
type Dataset struct {
	root map[string]any
}

// Document wraps one record of the top-level "documents" sequence.
type Document struct {
	raw map[string]any
}

// Question wraps one record of a document's "questions" sequence.
type Question struct {
	raw map[string]any
}

// Load reads and decodes the dataset at path. No schema validation is
// performed; missing fields surface later as empty values.
func Load(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %q: %w", path, err)
	}

	var root map[string]any
	if err := json.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("dataset: parse %q: %w", path, err)
	}
	return &Dataset{root: root}, nil
}

// Root returns the full decoded structure for serialization.
func (d *Dataset) Root() map[string]any {
	if d == nil {
		return nil
	}
	return d.root
}

// Documents returns the dataset's documents in file order.
func (d *Dataset) Documents() []Document {
	if d == nil {
		return nil
	}
	items, _ := d.root["documents"].([]any)
	out := make([]Document, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Document{raw: m})
	}
	return out
}

// ID returns the document id. JSON numbers decode as float64 and are
// coerced to int here.
func (d Document) ID() int {
	return intField(d.raw, "id")
}

// Questions returns the document's questions in file order.
func (d Document) Questions() []Question {
	items, _ := d.raw["questions"].([]any)
	out := make([]Question, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Question{raw: m})
	}
	return out
}

// ID returns the question id within its document.
func (q Question) ID() int {
	return intField(q.raw, "id")
}

// ActualQuestion returns the prompt text to ask.
func (q Question) ActualQuestion() string {
	s, _ := q.raw["actualQuestion"].(string)
	return s
}

// ExpectedAnswer returns the gold answer.
func (q Question) ExpectedAnswer() string {
	s, _ := q.raw["expectedAnswer"].(string)
	return s
}

// Answer returns the question's mutable answer record, creating it when
// the dataset carries none. Writes to the returned map land in the
// structure serialized to the result file.
func (q Question) Answer() map[string]any {
	if m, ok := q.raw["answer"].(map[string]any); ok {
		return m
	}
	m := make(map[string]any)
	q.raw["answer"] = m
	return m
}

func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return int(n)
	default:
		return 0
	}
}
