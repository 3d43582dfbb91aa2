// Package bench drives the RAG benchmark: retrieve, prompt, generate,
// score, persist, strictly one question at a time.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/stellarlinkco/rag-bench/internal/dataset"
	"github.com/stellarlinkco/rag-bench/internal/embedding"
	"github.com/stellarlinkco/rag-bench/internal/embedstore"
	"github.com/stellarlinkco/rag-bench/internal/llm"
	"github.com/stellarlinkco/rag-bench/internal/prompt"
	"github.com/stellarlinkco/rag-bench/internal/result"
	"github.com/stellarlinkco/rag-bench/internal/scorer"
)

// Retriever finds the most relevant stored segments for a query vector.
type Retriever interface {
	FindRelevant(query []float32, maxResults int, minScore float64) []embedstore.Match
}

// Runner wires the benchmark components. The dataset structure is
// mutated in place and rewritten after every question, so a killed run
// leaves a result file complete through the last scored question.
type Runner struct {
	Embedder  embedding.Model
	Retriever Retriever
	Chat      llm.ChatModel
	Writer    *result.Writer

	MaxResult int
	MinScore  float64

	Out    io.Writer // progress lines
	ErrOut io.Writer // non-fatal diagnostics
}

// Summary aggregates a finished run for the history store.
type Summary struct {
	Questions      int
	Correct        int
	MeanSimilarity float64
	MeanAnswerTime float64 // seconds
}

// Run evaluates every question of every document in dataset order. A
// chat or embedding failure aborts the run; results persisted so far
// remain on disk. A result-file write failure is logged and the run
// continues.
func (r *Runner) Run(ctx context.Context, ds *dataset.Dataset) (*Summary, error) {
	if r == nil {
		return nil, errors.New("bench: nil runner")
	}
	if ctx == nil {
		return nil, errors.New("bench: nil context")
	}
	if r.Embedder == nil {
		return nil, errors.New("bench: nil embedder")
	}
	if r.Retriever == nil {
		return nil, errors.New("bench: nil retriever")
	}
	if r.Chat == nil {
		return nil, errors.New("bench: nil chat model")
	}
	if r.Writer == nil {
		return nil, errors.New("bench: nil result writer")
	}
	if ds == nil {
		return nil, errors.New("bench: nil dataset")
	}

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := r.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	var (
		questions int
		correct   int
		sumSim    float64
		sumTime   float64
	)

	for _, doc := range ds.Documents() {
		docID := doc.ID()
		for _, q := range doc.Questions() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			actualQuestion := q.ActualQuestion()
			expectedAnswer := q.ExpectedAnswer()

			questionEmbedding, err := r.Embedder.Embed(ctx, actualQuestion)
			if err != nil {
				return nil, fmt.Errorf("bench: embed question %d/%d: %w", docID, q.ID(), err)
			}
			matches := r.Retriever.FindRelevant(questionEmbedding, r.MaxResult, r.MinScore)

			texts := make([]string, 0, len(matches))
			for _, m := range matches {
				texts = append(texts, m.Text)
			}
			composed := prompt.Render(actualQuestion, prompt.JoinContext(texts))

			start := time.Now()
			actualAnswer, err := r.Chat.Generate(ctx, composed)
			if err != nil {
				return nil, fmt.Errorf("bench: generate %d/%d: %w", docID, q.ID(), err)
			}
			answerTime := float64(time.Since(start).Milliseconds()) / 1000

			expectedEmbedding, err := r.Embedder.Embed(ctx, expectedAnswer)
			if err != nil {
				return nil, fmt.Errorf("bench: embed expected answer %d/%d: %w", docID, q.ID(), err)
			}
			actualEmbedding, err := r.Embedder.Embed(ctx, actualAnswer)
			if err != nil {
				return nil, fmt.Errorf("bench: embed actual answer %d/%d: %w", docID, q.ID(), err)
			}

			similarity := scorer.CosineSimilarity(expectedEmbedding, actualEmbedding)
			verdict := scorer.Classify(similarity, expectedAnswer)

			answer := q.Answer()
			answer["actualAnswer"] = actualAnswer
			answer["correct"] = verdict.Correct
			answer["prompt"] = verdict.Prompt
			answer["hallucination"] = verdict.Hallucination
			answer["time"] = answerTime
			answer["similarity"] = similarity

			if err := r.Writer.Write(ds.Root()); err != nil {
				// Not fatal: the next successful write supersedes this one.
				fmt.Fprintf(errOut, "bench: persist results: %v\n", err)
			}

			// The formula assumes 10 questions per document and is part
			// of the progress-output contract.
			fmt.Fprintf(out, "Progress: %d%%\n", (docID-1)*10+q.ID())

			questions++
			if verdict.Correct {
				correct++
			}
			sumSim += similarity
			sumTime += answerTime
		}
	}

	s := &Summary{Questions: questions, Correct: correct}
	if questions > 0 {
		s.MeanSimilarity = sumSim / float64(questions)
		s.MeanAnswerTime = sumTime / float64(questions)
	}
	return s, nil
}
