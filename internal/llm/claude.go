package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const claudeDefaultModel = "claude-sonnet-4-5-20250929"

type ClaudeModel struct {
	client      anthropic.Client
	model       string
	temperature float64
}

func NewClaude(apiKey, baseURL, model string, temperature float64) *ClaudeModel {
	opts := []option.RequestOption{}
	if v := strings.TrimSpace(apiKey); v != "" {
		opts = append(opts, option.WithAPIKey(v))
	}
	if v := strings.TrimSpace(baseURL); v != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(v, "/")))
	}

	m := strings.TrimSpace(model)
	if m == "" {
		m = claudeDefaultModel
	}

	return &ClaudeModel{
		client:      anthropic.NewClient(opts...),
		model:       m,
		temperature: temperature,
	}
}

func (m *ClaudeModel) Name() string {
	return "claude"
}

func (m *ClaudeModel) Generate(ctx context.Context, prompt string) (string, error) {
	if m == nil {
		return "", errors.New("llm: claude: nil model")
	}
	if ctx == nil {
		return "", errors.New("llm: claude: nil context")
	}

	msg, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(m.model),
		MaxTokens:   1024,
		Temperature: anthropic.Float(m.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}
	if msg == nil {
		return "", errors.New("llm: claude: nil response")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
