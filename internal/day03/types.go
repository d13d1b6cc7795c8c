package day03

// #region instruction
// Instruction is a closed sum type: Mul, Do or Dont.
type Instruction interface {
	instruction()
}

// Mul multiplies A by B.
type Mul struct {
	A, B int64
}

// Do enables subsequent Mul instructions.
type Do struct{}

// Dont disables subsequent Mul instructions.
type Dont struct{}

func (Mul) instruction()  {}
func (Do) instruction()   {}
func (Dont) instruction() {}

// #endregion instruction

// #region mode
// Mode selects which instruction patterns the scanner recognises.
type Mode int

const (
	// MulOnly recognises mul(a,b) and treats everything else as noise.
	MulOnly Mode = iota
	// Conditional also recognises do() and don't().
	Conditional
)

// #endregion mode

// #region state
// State is the accumulator threaded through the instruction stream.
type State struct {
	Enabled bool
	Sum     int64
}

// Initial is the state before the first instruction.
var Initial = State{Enabled: true}

// #endregion state
