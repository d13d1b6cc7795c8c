package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/astutecat/aoc-2024/internal/logging"
	"github.com/astutecat/aoc-2024/internal/pipeline"
	"github.com/astutecat/aoc-2024/internal/store"
)

// #region runner
// Runner executes registered solvers.
type Runner struct {
	reg   *pipeline.Registry
	cfg   Config
	store RunStore
	log   *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithStore records runs in s and, when caching is enabled, answers from it.
func WithStore(s RunStore) Option {
	return func(r *Runner) { r.store = s }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// NewRunner returns a runner over reg.
func NewRunner(reg *pipeline.Registry, cfg Config, opts ...Option) *Runner {
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	r := &Runner{reg: reg, cfg: cfg, log: logging.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the solvers the runner dispatches to.
func (r *Runner) Registry() *pipeline.Registry {
	return r.reg
}

// #endregion runner

// #region run
// Run loads the input of day/part from the data directory and solves it.
func (r *Runner) Run(ctx context.Context, day, part int, src Source) (Result, error) {
	input, err := LoadInput(r.cfg.DataDir, day, part, src)
	if err != nil {
		return Result{Day: day, Part: part, Source: src.String(), Err: err}, err
	}
	return r.RunInput(ctx, day, part, input, src.String())
}

// RunInput solves day/part over input. source labels the run in logs and
// history. A solver failure is returned both as the error and in Result.Err.
func (r *Runner) RunInput(ctx context.Context, day, part int, input []byte, source string) (Result, error) {
	res := Result{Day: day, Part: part, Source: source}
	fail := func(err error) (Result, error) {
		res.Err = err
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	solver, err := r.reg.Lookup(day)
	if err != nil {
		return fail(err)
	}
	if part != 1 && part != 2 {
		return fail(fmt.Errorf("day %d part %d: %w", day, part, pipeline.ErrUnknownPart))
	}
	res.Digest = Digest(input)

	if cached, ok := r.cached(day, part, res.Digest); ok {
		res.Answer = pipeline.Answer{Value: cached.Value, Solved: cached.Solved}
		res.Cached = true
		res.RunID = cached.RunID
		r.logResult(res)
		return res, nil
	}

	start := time.Now()
	ans, err := pipeline.Part(solver, part, string(input))
	res.Duration = time.Since(start)
	res.Answer = ans
	if err != nil {
		res.Err = fmt.Errorf("day %d part %d: %w", day, part, err)
	}

	res.RunID = r.record(res)
	r.logResult(res)
	return res, res.Err
}

func (r *Runner) cached(day, part int, digest string) (store.Run, bool) {
	if !r.cfg.Cache || r.store == nil {
		return store.Run{}, false
	}
	rec, err := r.store.CachedAnswer(day, part, digest)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.log.Warn("cache lookup failed", zap.Int("day", day), zap.Int("part", part), zap.Error(err))
		}
		return store.Run{}, false
	}
	return rec, true
}

func (r *Runner) record(res Result) string {
	if r.store == nil {
		return ""
	}
	rec := store.Run{
		Day:      res.Day,
		Part:     res.Part,
		Source:   res.Source,
		Digest:   res.Digest,
		Value:    res.Answer.Value,
		Solved:   res.Answer.Solved,
		Duration: res.Duration,
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	id, err := r.store.RecordRun(rec)
	if err != nil {
		r.log.Warn("record run failed", zap.Int("day", res.Day), zap.Int("part", res.Part), zap.Error(err))
		return ""
	}
	return id
}

func (r *Runner) logResult(res Result) {
	logging.LogRun(r.log, logging.RunEntry{
		RunID:    res.RunID,
		Day:      res.Day,
		Part:     res.Part,
		Source:   res.Source,
		Digest:   res.Digest,
		Answer:   res.Answer.String(),
		Solved:   res.Answer.Solved,
		Cached:   res.Cached,
		Duration: res.Duration,
		Err:      res.Err,
	})
}

// #endregion run

// #region run-all
// RunAll runs both parts of every registered day, at most Parallelism at a
// time. Per-day failures are reported in the results and do not stop the
// other days; only cancellation of ctx returns an error. Results are ordered
// by day, then part.
func (r *Runner) RunAll(ctx context.Context, src Source) ([]Result, error) {
	days := r.reg.Days()
	results := make([]Result, 0, len(days)*2)
	for _, day := range days {
		for part := 1; part <= 2; part++ {
			results = append(results, Result{Day: day, Part: part, Source: src.String()})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i := range results {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, _ := r.Run(gctx, results[i].Day, results[i].Part, src)
			results[i] = res
			if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
				return res.Err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// #endregion run-all
