package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms/ollama"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "all-minilm"
)

// OllamaModel serves the benchmark's fixed sentence encoder through an
// Ollama endpoint. The reference encoder is an all-MiniLM-L6-v2-class
// model producing ~384-dim vectors; the harness never depends on the
// exact dimension.
type OllamaModel struct {
	llm *ollama.LLM
}

// NewOllama builds an embedding model against the given Ollama server.
func NewOllama(baseURL, model string) (*OllamaModel, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	llm, err := ollama.New(
		ollama.WithModel(model),
		ollama.WithServerURL(baseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("embedding: init ollama: %w", err)
	}
	return &OllamaModel{llm: llm}, nil
}

// Embed encodes a single text.
func (m *OllamaModel) Embed(ctx context.Context, text string) ([]float32, error) {
	if m == nil || m.llm == nil {
		return nil, errors.New("embedding: nil model")
	}

	vecs, err := m.llm.CreateEmbedding(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	if len(vecs) == 0 {
		return nil, errors.New("embedding: empty response")
	}
	return vecs[0], nil
}
