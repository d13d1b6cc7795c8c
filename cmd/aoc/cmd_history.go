package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/astutecat/aoc-2024/internal/pipeline"
	"github.com/astutecat/aoc-2024/internal/store"
)

// #region history-cmd
type historyRow struct {
	RunID      string  `json:"run_id"`
	Day        int     `json:"day"`
	Part       int     `json:"part"`
	Source     string  `json:"source"`
	Answer     string  `json:"answer"`
	Error      string  `json:"error,omitempty"`
	DurationMS float64 `json:"duration_ms"`
	CreatedAt  string  `json:"created_at"`
}

func (a *app) historyCmd() *cobra.Command {
	var (
		last    int
		day     int
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(last, day)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no runs found")
				return nil
			}

			rows := make([]historyRow, len(runs))
			for i, r := range runs {
				rows[i] = toHistoryRow(r)
			}
			if jsonOut {
				return printJSON(out, rows)
			}
			printHistoryTable(out, rows)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&last, "last", "n", 20, "show N most recent runs")
	f.IntVarP(&day, "day", "d", 0, "only this day")
	f.BoolVar(&jsonOut, "json", false, "output as JSON instead of table")
	return cmd
}

func toHistoryRow(r store.Run) historyRow {
	ans := pipeline.Answer{Value: r.Value, Solved: r.Solved}
	return historyRow{
		RunID:      r.RunID,
		Day:        r.Day,
		Part:       r.Part,
		Source:     r.Source,
		Answer:     ans.String(),
		Error:      r.Error,
		DurationMS: float64(r.Duration.Microseconds()) / 1000,
		CreatedAt:  r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func printHistoryTable(w io.Writer, rows []historyRow) {
	fmt.Fprintf(w, "%-8s  %3s  %4s  %-8s  %-16s  %10s  %s\n",
		"Run", "Day", "Part", "Source", "Answer", "ms", "Time")
	fmt.Fprintf(w, "%-8s+-%3s+-%4s+-%-8s+-%-16s+-%10s+-%s\n",
		"--------", "---", "----", "--------", "----------------", "----------", "--------------------")
	for _, r := range rows {
		answer := r.Answer
		if r.Error != "" {
			answer = "error"
		}
		fmt.Fprintf(w, "%-8s  %3d  %4d  %-8s  %-16s  %10.3f  %s\n",
			shortID(r.RunID), r.Day, r.Part, r.Source, answer, r.DurationMS, r.CreatedAt)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion history-cmd
