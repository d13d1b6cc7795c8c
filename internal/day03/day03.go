package day03

import (
	"fmt"
	"math"

	"github.com/astutecat/aoc-2024/internal/parse"
	"github.com/astutecat/aoc-2024/internal/pipeline"
)

// Operands of mul are 32-bit unsigned integers.
const operandBits = 32

// #region scan
// Scan walks the input left to right. At each position it tries the patterns
// enabled by mode and, on a match, emits the instruction and jumps past it;
// otherwise it skips one byte. Skipped bytes are discarded. Input that yields
// no instruction at all is a parse error.
func Scan(input string, mode Mode) ([]Instruction, error) {
	c := parse.NewCursor(input)
	var out []Instruction
	for !c.Done() {
		if in, ok := match(c, mode); ok {
			out = append(out, in)
			continue
		}
		c.Advance()
	}
	if len(out) == 0 {
		return nil, parse.Errorf(c.Pos(), "no instructions found")
	}
	return out, nil
}

// Scanner returns a parse.Func for mode.
func Scanner(mode Mode) parse.Func[[]Instruction] {
	return func(input string) ([]Instruction, error) {
		return Scan(input, mode)
	}
}

func match(c *parse.Cursor, mode Mode) (Instruction, bool) {
	if m, ok := matchMul(c); ok {
		return m, true
	}
	if mode != Conditional {
		return nil, false
	}
	if c.Literal("do()") {
		return Do{}, true
	}
	if c.Literal("don't()") {
		return Dont{}, true
	}
	return nil, false
}

// matchMul consumes mul(<uint>,<uint>) or leaves the cursor untouched.
func matchMul(c *parse.Cursor) (Mul, bool) {
	start := c.Mark()
	if !c.Literal("mul(") {
		return Mul{}, false
	}
	a, err := c.Uint(operandBits)
	if err != nil || !c.Byte(',') {
		c.Reset(start)
		return Mul{}, false
	}
	b, err := c.Uint(operandBits)
	if err != nil || !c.Byte(')') {
		c.Reset(start)
		return Mul{}, false
	}
	return Mul{A: int64(a), B: int64(b)}, true
}

// #endregion scan

// #region fold
// Step applies one instruction to s and returns the next state. It fails
// when an enabled product or the running sum overflows int64.
func Step(s State, in Instruction) (State, error) {
	switch in := in.(type) {
	case Mul:
		if !s.Enabled {
			break
		}
		if in.B != 0 && in.A > math.MaxInt64/in.B {
			return s, fmt.Errorf("mul(%d,%d) overflows int64", in.A, in.B)
		}
		p := in.A * in.B
		if s.Sum > math.MaxInt64-p {
			return s, fmt.Errorf("sum overflows int64 at mul(%d,%d)", in.A, in.B)
		}
		s.Sum += p
	case Do:
		s.Enabled = true
	case Dont:
		s.Enabled = false
	default:
		panic(fmt.Sprintf("day03: unhandled instruction %T", in))
	}
	return s, nil
}

// Run folds program from Initial and returns the final sum.
func Run(program []Instruction) (int64, error) {
	s := Initial
	for i, in := range program {
		next, err := Step(s, in)
		if err != nil {
			return 0, fmt.Errorf("instruction %d: %w", i, err)
		}
		s = next
	}
	return s.Sum, nil
}

// #endregion fold

// #region entry-points
func PartOne(input string) (pipeline.Answer, error) {
	return pipeline.Solve(input, Scanner(MulOnly), Run)
}

func PartTwo(input string) (pipeline.Answer, error) {
	return pipeline.Solve(input, Scanner(Conditional), Run)
}

// New returns the day 3 solver.
func New() pipeline.Solver {
	return pipeline.Funcs{Number: 3, One: PartOne, Two: PartTwo}
}

// #endregion entry-points
