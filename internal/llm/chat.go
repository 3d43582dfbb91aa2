// Package llm provides the pluggable chat model the benchmark evaluates.
package llm

import "context"

// ChatModel generates an answer for a fully composed prompt. The caller
// measures latency; implementations perform a single blocking call with
// no retries of their own beyond transport-level behavior.
type ChatModel interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
