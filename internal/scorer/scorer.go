// Package scorer computes answer similarity and applies the grading rubric.
package scorer

import "math"

const (
	// Threshold is the minimum cosine similarity between expected and
	// actual answer embeddings for an answer to count as correct.
	Threshold = 0.70

	// RefusalAnswer is the literal sentence the model is instructed to
	// emit when the context holds no useful information. It doubles as
	// the gold answer for unanswerable questions.
	RefusalAnswer = "I can't provide any answer."
)

// Verdict is the rubric output for one question. Hallucination is always
// false here; it is reserved for human adjudication over the result file.
type Verdict struct {
	Correct       bool
	Prompt        bool
	Hallucination bool
}

// CosineSimilarity returns dot(a,b)/(|a|*|b|) in [-1, 1]. Mismatched
// lengths or a zero-norm vector yield 0 rather than NaN so a degenerate
// embedding never aborts a run.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Classify applies the rubric to a similarity score and the gold answer.
//
// similarity >= 0.70           -> correct, prompt
// otherwise, gold is a refusal -> neither (the model failed to refuse)
// otherwise                    -> prompt only (content failure)
func Classify(similarity float64, expectedAnswer string) Verdict {
	if math.IsNaN(similarity) {
		similarity = 0
	}

	if similarity >= Threshold {
		return Verdict{Correct: true, Prompt: true}
	}
	if expectedAnswer == RefusalAnswer {
		return Verdict{}
	}
	return Verdict{Prompt: true}
}
