package embedding

import (
	"context"
	"testing"
)

func TestNewOllamaDefaults(t *testing.T) {
	m, err := NewOllama("", "")
	if err != nil {
		t.Fatalf("NewOllama: %v", err)
	}
	if m == nil {
		t.Fatal("nil model")
	}
}

func TestEmbedNilModel(t *testing.T) {
	var m *OllamaModel
	if _, err := m.Embed(context.Background(), "text"); err == nil {
		t.Fatal("nil model: want error")
	}
}
