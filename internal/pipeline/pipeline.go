package pipeline

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/astutecat/aoc-2024/internal/parse"
)

// #region solve
// Fold reduces a structured form to a single number.
type Fold[T any] func(T) (int64, error)

// Solve runs input through parse and then fold. A parse failure aborts the
// whole computation and is returned unchanged so callers can errors.As it.
func Solve[T any](input string, p parse.Func[T], fold Fold[T]) (Answer, error) {
	form, err := p(input)
	if err != nil {
		return Unsolved, err
	}
	v, err := fold(form)
	if err != nil {
		return Unsolved, fmt.Errorf("evaluate: %w", err)
	}
	return Solved(v), nil
}

// Part dispatches to PartOne or PartTwo.
func Part(s Solver, part int, input string) (Answer, error) {
	switch part {
	case 1:
		return s.PartOne(input)
	case 2:
		return s.PartTwo(input)
	default:
		return Unsolved, fmt.Errorf("day %d part %d: %w", s.Day(), part, ErrUnknownPart)
	}
}

// #endregion solve

// #region helpers
// AbsDiff returns |a-b| without relying on signed subtraction, so it is safe
// for unsigned T.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Count returns the number of elements of xs for which keep is true.
func Count[T any](xs []T, keep func(T) bool) int64 {
	var n int64
	for _, x := range xs {
		if keep(x) {
			n++
		}
	}
	return n
}

// #endregion helpers
