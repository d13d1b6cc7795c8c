package parse

import "fmt"

// #region position
// Position locates a byte in the input. Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// #endregion position

// #region parse-error
// ParseError is returned when input text does not conform to a grammar.
type ParseError struct {
	Msg string
	Pos Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}

// Errorf builds a *ParseError at pos.
func Errorf(pos Position, format string, args ...interface{}) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// #endregion parse-error

// #region func
// Func turns raw puzzle text into a structured form.
type Func[T any] func(input string) (T, error)

// #endregion func
