package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellarlinkco/rag-bench/api"
	"github.com/stellarlinkco/rag-bench/internal/history"
)

func newReviewCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Serve results for human adjudication",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(st)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, st)
		},
	}
}

func runReview(cmd *cobra.Command, st *cliState) error {
	if st == nil || st.cfg == nil {
		return fmt.Errorf("review: missing config (internal error)")
	}
	cfg := st.cfg

	var hist *history.Store
	if strings.TrimSpace(cfg.History.Path) != "" {
		h, err := history.NewStore(cfg.History.Path)
		if err != nil {
			return err
		}
		defer h.Close()
		hist = h
	}

	s, err := api.NewServer(cfg.Benchmark.ResultPath, hist)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Review server listening on %s (results: %s)\n",
		cfg.Review.Addr, cfg.Benchmark.ResultPath)
	return s.Run(cfg.Review.Addr)
}
