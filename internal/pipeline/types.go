package pipeline

import (
	"errors"
	"strconv"
)

// #region answer
// Answer is the optional integer a puzzle part produces. The zero value is
// Unsolved, meaning the part has no implementation yet.
type Answer struct {
	Value  int64
	Solved bool
}

// Unsolved is the answer of a part that is not implemented.
var Unsolved = Answer{}

// Solved wraps v as a solved answer.
func Solved(v int64) Answer {
	return Answer{Value: v, Solved: true}
}

func (a Answer) String() string {
	if !a.Solved {
		return "-"
	}
	return strconv.FormatInt(a.Value, 10)
}

// #endregion answer

// #region solver
// Solver computes both parts of one day's puzzle from its raw input.
type Solver interface {
	Day() int
	PartOne(input string) (Answer, error)
	PartTwo(input string) (Answer, error)
}

// Funcs adapts a pair of part functions to Solver.
type Funcs struct {
	Number int
	One    func(input string) (Answer, error)
	Two    func(input string) (Answer, error)
}

func (f Funcs) Day() int { return f.Number }

func (f Funcs) PartOne(input string) (Answer, error) { return call(f.One, input) }

func (f Funcs) PartTwo(input string) (Answer, error) { return call(f.Two, input) }

func call(fn func(string) (Answer, error), input string) (Answer, error) {
	if fn == nil {
		return Unsolved, nil
	}
	return fn(input)
}

// #endregion solver

// #region errors
var (
	ErrUnknownDay  = errors.New("unknown day")
	ErrUnknownPart = errors.New("unknown part")
)

// #endregion errors
