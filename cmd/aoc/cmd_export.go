package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astutecat/aoc-2024/internal/fixture"
)

// #region export-cmd
func (a *app) exportCmd() *cobra.Command {
	var (
		out     string
		last    int
		example bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a manifest of the latest successful answers",
		Long: `Builds a manifest from the run history, keeping the most recent error-free
answer per day and part. The manifest can later be replayed with
"aoc check --manifest".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(last, 0)
			if err != nil {
				return err
			}
			src := sourceOf(example).String()
			m := fixture.FromRuns(fmt.Sprintf("exported from %s", a.cfg.DBPath), src, runs)
			if len(m.Cases) == 0 {
				return fmt.Errorf("no successful %s runs in history", src)
			}
			if err := m.Save(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d cases to %s\n", len(m.Cases), out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "manifest file to write")
	f.IntVarP(&last, "last", "n", 1000, "consider the N most recent runs")
	f.BoolVarP(&example, "example", "e", false, "export example runs instead of real ones")
	return cmd
}

// #endregion export-cmd
