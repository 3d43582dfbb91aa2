package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const ollamaDefaultBaseURL = "http://localhost:11434"

type OllamaModel struct {
	llm         *ollama.LLM
	model       string
	temperature float64
}

// NewOllama builds a chat model against a local Ollama server. Local
// models can take minutes per answer, so timeout comes from config
// rather than the harness.
func NewOllama(baseURL, model string, temperature float64, timeout time.Duration) (*OllamaModel, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = ollamaDefaultBaseURL
	}
	m := strings.TrimSpace(model)
	if m == "" {
		m = "phi3"
	}

	opts := []ollama.Option{
		ollama.WithModel(m),
		ollama.WithServerURL(baseURL),
	}
	if timeout > 0 {
		opts = append(opts, ollama.WithHTTPClient(&http.Client{Timeout: timeout}))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("llm: ollama: %w", err)
	}

	return &OllamaModel{llm: llm, model: m, temperature: temperature}, nil
}

func (m *OllamaModel) Name() string {
	return "ollama"
}

func (m *OllamaModel) Generate(ctx context.Context, prompt string) (string, error) {
	if m == nil || m.llm == nil {
		return "", errors.New("llm: ollama: nil model")
	}
	if ctx == nil {
		return "", errors.New("llm: ollama: nil context")
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, m.llm, prompt,
		llms.WithTemperature(m.temperature))
	if err != nil {
		return "", fmt.Errorf("llm: ollama: %w", err)
	}
	return out, nil
}
