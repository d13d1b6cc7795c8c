package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/astutecat/aoc-2024/internal/fixture"
)

// #region check-cmd
func (a *app) checkCmd() *cobra.Command {
	var manifestPath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare solver answers with a manifest of expected answers",
		Long: `Runs every case of the manifest (by default <data>/examples/manifest.yaml)
without consulting the answer cache and prints OK or DIFF per case. Exits
non-zero when any case diverges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if manifestPath == "" {
				manifestPath = filepath.Join(a.cfg.DataDir, "examples", "manifest.yaml")
			}
			m, err := fixture.LoadManifest(manifestPath)
			if err != nil {
				return err
			}

			results, err := fixture.Check(cmd.Context(), a.runner(nil, false), m)
			if err != nil {
				return err
			}

			ok := color.New(color.FgGreen).SprintFunc()
			diff := color.New(color.FgRed, color.Bold).SprintFunc()
			errc := color.New(color.FgYellow).SprintFunc()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s  %-4s  %-16s  %-16s  %s\n", "Day", "Part", "Want", "Got", "Status")
			for _, r := range results {
				status := ok("OK")
				got := r.Got.String()
				switch {
				case r.Err != nil:
					status = errc("ERR")
					got = r.Err.Error()
				case !r.Match:
					status = diff("DIFF")
				}
				fmt.Fprintf(out, "%-4d  %-4d  %-16s  %-16s  %s\n",
					r.Case.Day, r.Case.Part, r.Case.Expected(), got, status)
			}

			s := fixture.Summarize(results)
			fmt.Fprintf(out, "\n%d/%d match, %d diverge (%d errors)\n", s.Matches, s.Total, s.Diverge, s.Errors)
			if s.Diverge > 0 {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "manifest of expected answers")
	return cmd
}

// #endregion check-cmd
