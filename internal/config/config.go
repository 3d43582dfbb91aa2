// Package config loads harness configuration from YAML with environment
// overrides. Benchmark constants have fixed defaults; changing them is a
// deliberate, rebuild-or-reconfigure act, never a per-run flag.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

// Benchmark defaults. These mirror the reference benchmark configuration
// and apply whenever the config file leaves a field unset.
const (
	DefaultStorePath   = "data/embedding.json"
	DefaultDatasetPath = "data/dataset.json"
	DefaultResultPath  = "results/result.json"
	DefaultMaxResult   = 5
	DefaultMinScore    = 0.65
	DefaultTemperature = 0.4
)

type Config struct {
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	LLM       LLMConfig       `yaml:"llm"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	History   HistoryConfig   `yaml:"history"`
	Review    ReviewConfig    `yaml:"review"`
}

// BenchmarkConfig is the immutable record the driver runs against.
// Tests construct alternates directly instead of mutating shared state.
type BenchmarkConfig struct {
	StorePath   string  `yaml:"store_path"`
	DatasetPath string  `yaml:"dataset_path"`
	ResultPath  string  `yaml:"result_path"`
	MaxResult   int     `yaml:"max_result"`
	MinScore    float64 `yaml:"min_score"`
}

type LLMConfig struct {
	DefaultProvider string                    `yaml:"default_provider,omitempty"`
	Temperature     float64                   `yaml:"temperature,omitempty"`
	Providers       map[string]ProviderConfig `yaml:"providers,omitempty"`
}

type ProviderConfig struct {
	APIKey         string `yaml:"api_key,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
	Model          string `yaml:"model,omitempty"`
	Project        string `yaml:"project,omitempty"`         // vertex
	Location       string `yaml:"location,omitempty"`        // vertex
	TimeoutMinutes int    `yaml:"timeout_minutes,omitempty"` // local models can take minutes
}

// Timeout returns the provider's call timeout, zero when unset.
func (p ProviderConfig) Timeout() time.Duration {
	if p.TimeoutMinutes <= 0 {
		return 0
	}
	return time.Duration(p.TimeoutMinutes) * time.Minute
}

type EmbeddingConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

type HistoryConfig struct {
	Path string `yaml:"path,omitempty"`
}

type ReviewConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Load reads the config at path, merges credential environment
// variables, and applies defaults.
func Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	// Preseeded so that an explicit min_score: 0 is distinguishable
	// from the field being absent; yaml only overwrites present keys.
	var cfg Config
	cfg.Benchmark.MinScore = DefaultMinScore
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	mergeEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func mergeEnv(cfg *Config) {
	if cfg.LLM.Providers == nil {
		cfg.LLM.Providers = make(map[string]ProviderConfig)
	}

	if v := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); v != "" {
		p := cfg.LLM.Providers["claude"]
		p.APIKey = v
		cfg.LLM.Providers["claude"] = p
	} else if v := strings.TrimSpace(os.Getenv("ANTHROPIC_AUTH_TOKEN")); v != "" {
		p := cfg.LLM.Providers["claude"]
		p.APIKey = v
		cfg.LLM.Providers["claude"] = p
	}

	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		p := cfg.LLM.Providers["openai"]
		p.APIKey = v
		cfg.LLM.Providers["openai"] = p
	}

	if v := strings.TrimSpace(os.Getenv("OLLAMA_BASE_URL")); v != "" {
		p := cfg.LLM.Providers["ollama"]
		p.BaseURL = v
		cfg.LLM.Providers["ollama"] = p
		if cfg.Embedding.BaseURL == "" {
			cfg.Embedding.BaseURL = v
		}
	}
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Benchmark.StorePath) == "" {
		cfg.Benchmark.StorePath = DefaultStorePath
	}
	if strings.TrimSpace(cfg.Benchmark.DatasetPath) == "" {
		cfg.Benchmark.DatasetPath = DefaultDatasetPath
	}
	if strings.TrimSpace(cfg.Benchmark.ResultPath) == "" {
		cfg.Benchmark.ResultPath = DefaultResultPath
	}
	if cfg.Benchmark.MaxResult <= 0 {
		cfg.Benchmark.MaxResult = DefaultMaxResult
	}

	if strings.TrimSpace(cfg.LLM.DefaultProvider) == "" {
		cfg.LLM.DefaultProvider = "openai"
	}
	if cfg.LLM.Temperature <= 0 {
		cfg.LLM.Temperature = DefaultTemperature
	}

	if strings.TrimSpace(cfg.History.Path) == "" {
		cfg.History.Path = "results/history.db"
	}
	if strings.TrimSpace(cfg.Review.Addr) == "" {
		cfg.Review.Addr = ":8080"
	}
}
