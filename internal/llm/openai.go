package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIModel struct {
	client      *openai.Client
	model       string
	temperature float64
}

func NewOpenAI(apiKey, baseURL, model string, temperature float64) *OpenAIModel {
	cfg := openai.DefaultConfig(strings.TrimSpace(apiKey))
	if v := strings.TrimSpace(baseURL); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}

	m := strings.TrimSpace(model)
	if m == "" {
		m = "gpt-4o"
	}

	return &OpenAIModel{
		client:      openai.NewClientWithConfig(cfg),
		model:       m,
		temperature: temperature,
	}
}

func (m *OpenAIModel) Name() string {
	return "openai"
}

func (m *OpenAIModel) Generate(ctx context.Context, prompt string) (string, error) {
	if m == nil || m.client == nil {
		return "", errors.New("llm: openai: nil client")
	}
	if ctx == nil {
		return "", errors.New("llm: openai: nil context")
	}

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(m.temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
