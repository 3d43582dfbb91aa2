// Package result persists benchmark results between questions.
package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Writer serializes the full in-memory result structure after every
// question. It writes to a temporary file and renames, so a kill
// mid-write never leaves a torn result file on disk.
type Writer struct {
	path string
}

// NewWriter creates a writer targeting path, creating the parent
// directory if needed.
func NewWriter(path string) (*Writer, error) {
	if path == "" {
		return nil, errors.New("result: empty path")
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("result: create dir %q: %w", dir, err)
		}
	}
	return &Writer{path: path}, nil
}

// Path returns the result file path.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// Write serializes root pretty-printed and atomically replaces the
// result file. On failure the previous file contents remain intact.
func (w *Writer) Write(root any) error {
	if w == nil {
		return errors.New("result: nil writer")
	}

	b, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("result: marshal: %w", err)
	}
	b = append(b, '\n')

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("result: write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("result: rename %q: %w", w.path, err)
	}
	return nil
}
