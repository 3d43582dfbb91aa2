package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stellarlinkco/rag-bench/internal/history"
)

func newHistoryCmd(st *cliState) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past benchmark runs",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(st)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, st, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show")
	return cmd
}

func runHistory(cmd *cobra.Command, st *cliState, limit int) error {
	if st == nil || st.cfg == nil {
		return fmt.Errorf("history: missing config (internal error)")
	}

	hist, err := history.NewStore(st.cfg.History.Path)
	if err != nil {
		return err
	}
	defer hist.Close()

	entries, err := hist.ListRecent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "No benchmark runs recorded.")
		return nil
	}

	for _, e := range entries {
		_, _ = fmt.Fprintf(out, "%-4d %-10s %-24s %3d/%-3d sim=%.4f time=%.3fs %s\n",
			e.ID, e.Provider, e.Model, e.Correct, e.Questions,
			e.MeanSimilarity, e.MeanAnswerTime, e.RunDate.Format("2006-01-02 15:04"))
	}
	return nil
}
