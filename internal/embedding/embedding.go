// Package embedding abstracts the sentence encoder used for retrieval
// queries and answer scoring.
package embedding

import "context"

// Model turns text into a dense vector. Implementations must be
// deterministic for a given (model, text) pair; the harness embeds the
// same strings on both sides of the similarity comparison.
type Model interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
