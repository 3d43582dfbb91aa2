package llm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stellarlinkco/rag-bench/internal/config"
)

// NewRegistryFromConfig builds chat models for every configured provider.
func NewRegistryFromConfig(ctx context.Context, cfg *config.Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.New("llm: nil config")
	}

	temperature := cfg.LLM.Temperature
	if temperature <= 0 {
		temperature = config.DefaultTemperature
	}

	r := NewRegistry()
	for name, pcfg := range cfg.LLM.Providers {
		key := strings.ToLower(strings.TrimSpace(name))
		switch key {
		case "":
			continue
		case "openai":
			r.Register(NewOpenAI(pcfg.APIKey, pcfg.BaseURL, pcfg.Model, temperature))
		case "claude", "anthropic":
			r.Register(NewClaude(pcfg.APIKey, pcfg.BaseURL, pcfg.Model, temperature))
		case "ollama":
			m, err := NewOllama(pcfg.BaseURL, pcfg.Model, temperature, pcfg.Timeout())
			if err != nil {
				return nil, err
			}
			r.Register(m)
		case "vertex", "gemini":
			m, err := NewVertex(ctx, pcfg.Project, pcfg.Location, pcfg.Model, temperature)
			if err != nil {
				return nil, err
			}
			r.Register(m)
		default:
			return nil, fmt.Errorf("llm: unknown provider %q", name)
		}
	}

	return r, nil
}

// DefaultFromConfig returns the configured default chat model.
func DefaultFromConfig(ctx context.Context, cfg *config.Config) (ChatModel, error) {
	if cfg == nil {
		return nil, errors.New("llm: nil config")
	}
	reg, err := NewRegistryFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.LLM.DefaultProvider)
	if name == "" {
		name = "openai"
	}
	if m, ok := reg.Get(name); ok {
		return m, nil
	}

	if len(reg.models) == 1 {
		for _, m := range reg.models {
			return m, nil
		}
	}

	available := reg.Names()
	sort.Strings(available)
	return nil, fmt.Errorf("llm: default provider %q not configured (available: %s)", name, strings.Join(available, ", "))
}
