package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/astutecat/aoc-2024/internal/harness"
)

// #region run-cmd
func (a *app) runCmd() *cobra.Command {
	var (
		part      int
		example   bool
		inputPath string
		noCache   bool
	)
	cmd := &cobra.Command{
		Use:   "run [day]",
		Short: "Solve one day, or every registered day",
		Long: `Solves both parts of the given day (or only --part). Without a day every
registered day is run in parallel; days whose input file is missing are
reported and skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			r := a.runner(st, a.cfg.Cache && !noCache)
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				if inputPath != "" || part != 0 {
					return errors.New("--input and --part need a day")
				}
				results, err := r.RunAll(cmd.Context(), sourceOf(example))
				if err != nil {
					return err
				}
				failed := false
				for _, res := range results {
					printResult(out, res)
					if res.Err != nil && !errors.Is(res.Err, harness.ErrInputNotFound) {
						failed = true
					}
				}
				if failed {
					return errFailed
				}
				return nil
			}

			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			parts := []int{1, 2}
			if part != 0 {
				parts = []int{part}
			}

			var input []byte
			if inputPath != "" {
				if input, err = os.ReadFile(inputPath); err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			}

			failed := false
			for _, p := range parts {
				var res harness.Result
				if input != nil {
					res, err = r.RunInput(cmd.Context(), day, p, input, "file")
				} else {
					res, err = r.Run(cmd.Context(), day, p, sourceOf(example))
				}
				printResult(out, res)
				if err != nil {
					failed = true
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&part, "part", "p", 0, "run only this part (1 or 2)")
	f.BoolVarP(&example, "example", "e", false, "use the example input")
	f.StringVarP(&inputPath, "input", "i", "", "read input from this file")
	f.BoolVar(&noCache, "no-cache", false, "ignore cached answers")
	return cmd
}

func printResult(w io.Writer, res harness.Result) {
	if res.Err != nil {
		fmt.Fprintf(w, "day %02d part %d: error: %v\n", res.Day, res.Part, res.Err)
		return
	}
	tag := ""
	if res.Cached {
		tag = " (cached)"
	}
	fmt.Fprintf(w, "day %02d part %d: %-16s %10s%s\n", res.Day, res.Part, res.Answer, res.Duration, tag)
}

// #endregion run-cmd
