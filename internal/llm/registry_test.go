package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/stellarlinkco/rag-bench/internal/config"
)

type staticModel struct {
	name   string
	answer string
}

func (m *staticModel) Name() string { return m.name }

func (m *staticModel) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return m.answer, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&staticModel{name: "OpenAI"})
	r.Register(&staticModel{name: " ollama "})
	r.Register(nil)

	if _, ok := r.Get("openai"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, ok := r.Get("ollama"); !ok {
		t.Error("lookup should trim whitespace")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("unknown name must not resolve")
	}
	if got := len(r.Names()); got != 2 {
		t.Errorf("Names() has %d entries, want 2", got)
	}

	var nilReg *Registry
	if _, ok := nilReg.Get("openai"); ok {
		t.Error("nil registry must not resolve")
	}
}

func TestNewRegistryFromConfig(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			Temperature: 0.4,
			Providers: map[string]config.ProviderConfig{
				"openai": {APIKey: "sk-test", Model: "gpt-4o"},
				"claude": {APIKey: "ak-test"},
				"ollama": {BaseURL: "http://localhost:11434", Model: "phi3"},
			},
		},
	}

	r, err := NewRegistryFromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewRegistryFromConfig: %v", err)
	}
	for _, name := range []string{"openai", "claude", "ollama"} {
		if _, ok := r.Get(name); !ok {
			t.Errorf("provider %q not registered", name)
		}
	}
}

func TestNewRegistryFromConfigUnknownProvider(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			Providers: map[string]config.ProviderConfig{"mystery": {}},
		},
	}
	if _, err := NewRegistryFromConfig(context.Background(), cfg); err == nil {
		t.Fatal("unknown provider: want error")
	}
}

func TestDefaultFromConfig(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			DefaultProvider: "openai",
			Providers: map[string]config.ProviderConfig{
				"openai": {APIKey: "sk-test"},
			},
		},
	}
	m, err := DefaultFromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("DefaultFromConfig: %v", err)
	}
	if m.Name() != "openai" {
		t.Errorf("Name = %q, want openai", m.Name())
	}
}

func TestDefaultFromConfigFallsBackToOnlyProvider(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			DefaultProvider: "claude",
			Providers: map[string]config.ProviderConfig{
				"openai": {APIKey: "sk-test"},
			},
		},
	}
	m, err := DefaultFromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("DefaultFromConfig: %v", err)
	}
	if m.Name() != "openai" {
		t.Errorf("Name = %q, want the single configured provider", m.Name())
	}
}

func TestDefaultFromConfigMissing(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			DefaultProvider: "vertex",
			Providers: map[string]config.ProviderConfig{
				"openai": {APIKey: "sk-test"},
				"claude": {APIKey: "ak-test"},
			},
		},
	}
	_, err := DefaultFromConfig(context.Background(), cfg)
	if err == nil {
		t.Fatal("missing default with several providers: want error")
	}
	if !strings.Contains(err.Error(), "available") {
		t.Errorf("error should list available providers: %v", err)
	}
}
