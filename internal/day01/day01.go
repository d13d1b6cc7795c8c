package day01

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/astutecat/aoc-2024/internal/parse"
	"github.com/astutecat/aoc-2024/internal/pipeline"
)

// #region types
// Lists holds the left and right columns in input order.
type Lists struct {
	Left  []int64
	Right []int64
}

// Frequencies maps a value to how often it occurs.
type Frequencies map[int64]int64

// ErrLengthMismatch is returned when the two columns differ in length.
var ErrLengthMismatch = errors.New("left and right lists differ in length")

// #endregion types

// #region parse
// ParseLists reads one pair of blank-separated unsigned integers per line and
// unzips the pairs into two columns.
func ParseLists(input string) (Lists, error) {
	var l Lists
	for _, line := range parse.Lines(input) {
		vals, err := parse.Uints(line, 63)
		if err != nil {
			return Lists{}, err
		}
		if len(vals) != 2 {
			return Lists{}, parse.Errorf(line.Start(), "expected exactly two integers, found %d", len(vals))
		}
		l.Left = append(l.Left, int64(vals[0]))
		l.Right = append(l.Right, int64(vals[1]))
	}
	return l, nil
}

// #endregion parse

// #region evaluators
// DistanceSum sorts both columns and sums the absolute differences of the
// values at matching positions. The input is not modified.
func DistanceSum(l Lists) (int64, error) {
	if len(l.Left) != len(l.Right) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(l.Left), len(l.Right))
	}
	left := slices.Sorted(slices.Values(l.Left))
	right := slices.Sorted(slices.Values(l.Right))

	var sum int64
	for i := range left {
		d := pipeline.AbsDiff(left[i], right[i])
		if sum > math.MaxInt64-d {
			return 0, fmt.Errorf("distance sum overflows int64 at row %d", i)
		}
		sum += d
	}
	return sum, nil
}

// Count builds a frequency map of values.
func Count(values []int64) Frequencies {
	f := make(Frequencies, len(values))
	for _, v := range values {
		f[v]++
	}
	return f
}

// Similarity weights each left value by the number of times it occurs in the
// right column and sums the products. It fails when the sum overflows int64.
func Similarity(l Lists) (int64, error) {
	right := Count(l.Right)
	var sum int64
	for i, v := range l.Left {
		n := right[v]
		if n != 0 && v > math.MaxInt64/n {
			return 0, fmt.Errorf("similarity of %d overflows int64 at row %d", v, i)
		}
		if sum > math.MaxInt64-v*n {
			return 0, fmt.Errorf("similarity sum overflows int64 at row %d", i)
		}
		sum += v * n
	}
	return sum, nil
}

// #endregion evaluators

// #region entry-points
func PartOne(input string) (pipeline.Answer, error) {
	return pipeline.Solve(input, ParseLists, DistanceSum)
}

func PartTwo(input string) (pipeline.Answer, error) {
	return pipeline.Solve(input, ParseLists, Similarity)
}

// New returns the day 1 solver.
func New() pipeline.Solver {
	return pipeline.Funcs{Number: 1, One: PartOne, Two: PartTwo}
}

// #endregion entry-points
