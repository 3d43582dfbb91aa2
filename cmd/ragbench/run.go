package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellarlinkco/rag-bench/internal/bench"
	"github.com/stellarlinkco/rag-bench/internal/dataset"
	"github.com/stellarlinkco/rag-bench/internal/embedding"
	"github.com/stellarlinkco/rag-bench/internal/embedstore"
	"github.com/stellarlinkco/rag-bench/internal/history"
	"github.com/stellarlinkco/rag-bench/internal/llm"
	"github.com/stellarlinkco/rag-bench/internal/result"
)

func newRunCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark over the configured dataset",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(st)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, st)
		},
	}
}

func runBenchmark(cmd *cobra.Command, st *cliState) error {
	if st == nil || st.cfg == nil {
		return fmt.Errorf("run: missing config (internal error)")
	}
	cfg := st.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := embedstore.LoadFile(cfg.Benchmark.StorePath)
	if err != nil {
		return err
	}
	ds, err := dataset.Load(cfg.Benchmark.DatasetPath)
	if err != nil {
		return err
	}
	embedder, err := embedding.NewOllama(cfg.Embedding.BaseURL, cfg.Embedding.Model)
	if err != nil {
		return err
	}
	chat, err := llm.DefaultFromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	writer, err := result.NewWriter(cfg.Benchmark.ResultPath)
	if err != nil {
		return err
	}

	r := &bench.Runner{
		Embedder:  embedder,
		Retriever: store,
		Chat:      chat,
		Writer:    writer,
		MaxResult: cfg.Benchmark.MaxResult,
		MinScore:  cfg.Benchmark.MinScore,
		Out:       cmd.OutOrStdout(),
		ErrOut:    cmd.ErrOrStderr(),
	}

	summary, err := r.Run(ctx, ds)
	if err != nil {
		return err
	}

	model := cfg.LLM.Providers[chat.Name()].Model
	if model == "" {
		model = chat.Name()
	}
	saveRunHistory(cmd, cfg.History.Path, chat.Name(), model, cfg.Benchmark.DatasetPath, summary)

	_, _ = fmt.Fprintf(cmd.OutOrStdout(),
		"Benchmark complete: provider=%s questions=%d correct=%d mean_similarity=%.4f mean_time=%.3fs\n",
		chat.Name(), summary.Questions, summary.Correct, summary.MeanSimilarity, summary.MeanAnswerTime)
	return nil
}

// saveRunHistory is best-effort: a history failure never fails a run
// whose results are already on disk.
func saveRunHistory(cmd *cobra.Command, dbPath, provider, model, datasetPath string, s *bench.Summary) {
	if strings.TrimSpace(dbPath) == "" || s == nil {
		return
	}

	hist, err := history.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "run: open history: %v\n", err)
		return
	}
	defer hist.Close()

	entry := &history.Entry{
		Provider:       provider,
		Model:          model,
		Dataset:        datasetPath,
		Questions:      s.Questions,
		Correct:        s.Correct,
		MeanSimilarity: s.MeanSimilarity,
		MeanAnswerTime: s.MeanAnswerTime,
	}
	if err := hist.Save(cmd.Context(), entry); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "run: save history: %v\n", err)
	}
}
