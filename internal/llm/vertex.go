package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai/vertex"
)

type VertexModel struct {
	llm         *vertex.Vertex
	model       string
	temperature float64
}

// NewVertex builds a Vertex AI Gemini chat model. Credentials resolve
// through application default credentials.
func NewVertex(ctx context.Context, project, location, model string, temperature float64) (*VertexModel, error) {
	if ctx == nil {
		return nil, errors.New("llm: vertex: nil context")
	}
	if strings.TrimSpace(project) == "" {
		return nil, errors.New("llm: vertex: missing project")
	}
	if strings.TrimSpace(location) == "" {
		location = "us-central1"
	}
	m := strings.TrimSpace(model)
	if m == "" {
		m = "gemini-1.5-pro"
	}

	llm, err := vertex.New(ctx,
		vertex.WithCloudProject(project),
		vertex.WithCloudLocation(location),
		vertex.WithDefaultModel(m),
	)
	if err != nil {
		return nil, fmt.Errorf("llm: vertex: %w", err)
	}

	return &VertexModel{llm: llm, model: m, temperature: temperature}, nil
}

func (m *VertexModel) Name() string {
	return "vertex"
}

func (m *VertexModel) Generate(ctx context.Context, prompt string) (string, error) {
	if m == nil || m.llm == nil {
		return "", errors.New("llm: vertex: nil model")
	}
	if ctx == nil {
		return "", errors.New("llm: vertex: nil context")
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, m.llm, prompt,
		llms.WithTemperature(m.temperature))
	if err != nil {
		return "", fmt.Errorf("llm: vertex: %w", err)
	}
	return out, nil
}
