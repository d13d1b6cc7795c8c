package day02

import (
	"slices"

	"github.com/astutecat/aoc-2024/internal/parse"
	"github.com/astutecat/aoc-2024/internal/pipeline"
)

// #region parse
// ParseReports reads one report per line. Every line needs at least one
// integer.
func ParseReports(input string) ([]Report, error) {
	lines := parse.Lines(input)
	reports := make([]Report, 0, len(lines))
	for _, line := range lines {
		vals, err := parse.Uints(line, 32)
		if err != nil {
			return nil, err
		}
		r := make(Report, len(vals))
		for i, v := range vals {
			r[i] = uint32(v)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// #endregion parse

// #region classify
// DirectionOf derives the direction from the first two readings. ok is false
// when the report is too short or the first two readings are equal.
func DirectionOf(r Report) (d Direction, ok bool) {
	if len(r) < 2 || r[0] == r[1] {
		return 0, false
	}
	if r[0] < r[1] {
		return Increasing, true
	}
	return Decreasing, true
}

// Classify reports Safe when r has at least two readings, every step moves
// in the direction set by the first pair, and every step size is in [1,3].
func Classify(r Report) Status {
	dir, ok := DirectionOf(r)
	if !ok {
		return Unsafe
	}
	for i := 1; i < len(r); i++ {
		a, b := r[i-1], r[i]
		if !stepOK(dir, a, b) {
			return Unsafe
		}
	}
	return Safe
}

// ClassifyDampened is Classify with a tolerance of one bad reading: the
// report is Safe if it already is, or if removing any single reading makes
// it Safe.
func ClassifyDampened(r Report) Status {
	if Classify(r) == Safe {
		return Safe
	}
	for i := range r {
		if Classify(slices.Delete(slices.Clone(r), i, i+1)) == Safe {
			return Safe
		}
	}
	return Unsafe
}

func stepOK(dir Direction, a, b uint32) bool {
	switch dir {
	case Increasing:
		if a >= b {
			return false
		}
	case Decreasing:
		if a <= b {
			return false
		}
	}
	d := pipeline.AbsDiff(a, b)
	return d >= minStep && d <= maxStep
}

// #endregion classify

// #region entry-points
// CountSafe returns a fold that counts reports classified Safe by classify.
func CountSafe(classify func(Report) Status) pipeline.Fold[[]Report] {
	return func(reports []Report) (int64, error) {
		return pipeline.Count(reports, func(r Report) bool { return classify(r) == Safe }), nil
	}
}

func PartOne(input string) (pipeline.Answer, error) {
	return pipeline.Solve(input, ParseReports, CountSafe(Classify))
}

func PartTwo(input string) (pipeline.Answer, error) {
	return pipeline.Solve(input, ParseReports, CountSafe(ClassifyDampened))
}

// New returns the day 2 solver.
func New() pipeline.Solver {
	return pipeline.Funcs{Number: 2, One: PartOne, Two: PartTwo}
}

// #endregion entry-points
