package fixture

import (
	"context"
	"errors"

	"github.com/astutecat/aoc-2024/internal/harness"
	"github.com/astutecat/aoc-2024/internal/pipeline"
)

// #region types
// Executor runs one day/part. *harness.Runner implements it.
type Executor interface {
	Run(ctx context.Context, day, part int, src harness.Source) (harness.Result, error)
	RunInput(ctx context.Context, day, part int, input []byte, source string) (harness.Result, error)
}

// CheckResult is the outcome of checking one case.
type CheckResult struct {
	Case  Case
	Got   pipeline.Answer
	Err   error
	Match bool
}

// Summary provides aggregate stats from a check run.
type Summary struct {
	Total   int
	Matches int
	Diverge int
	Errors  int
}

// #endregion types

// #region check
// Check runs every case of m in order. Solver errors count as divergence and
// are reported per case; only an invalid source or a cancelled ctx aborts.
func Check(ctx context.Context, exec Executor, m *Manifest) ([]CheckResult, error) {
	src, err := harness.ParseSource(m.Source)
	if err != nil {
		return nil, err
	}

	results := make([]CheckResult, 0, len(m.Cases))
	for _, c := range m.Cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		var res harness.Result
		if c.Input != "" {
			res, err = exec.RunInput(ctx, c.Day, c.Part, []byte(c.Input), "inline")
		} else {
			res, err = exec.Run(ctx, c.Day, c.Part, src)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return results, err
		}

		results = append(results, CheckResult{
			Case:  c,
			Got:   res.Answer,
			Err:   err,
			Match: err == nil && res.Answer == c.Expected(),
		})
	}
	return results, nil
}

// Summarize computes aggregate stats from check results.
func Summarize(results []CheckResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Match:
			s.Matches++
		case r.Err != nil:
			s.Errors++
			s.Diverge++
		default:
			s.Diverge++
		}
	}
	return s
}

// #endregion check
