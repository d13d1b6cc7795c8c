package parse

import "strings"

// #region line
// Line is one line of input without its terminator.
type Line struct {
	Text   string
	Number int // 1-based
	Offset int // byte offset of Text[0] in the whole input
}

// Start returns the position of the first byte of the line.
func (l Line) Start() Position {
	return Position{Line: l.Number, Column: 1, Offset: l.Offset}
}

// Cursor returns a cursor over the line that reports whole-input positions.
func (l Line) Cursor() *Cursor {
	return NewCursorAt(l.Text, l.Start())
}

// #endregion line

// #region lines
// Lines splits input on "\n", strips a trailing "\r" from each line and drops
// trailing blank lines. Blank lines in the middle are kept so grammars can
// reject them.
func Lines(input string) []Line {
	var lines []Line
	offset := 0
	for n := 1; offset <= len(input); n++ {
		end := strings.IndexByte(input[offset:], '\n')
		next := len(input) + 1
		if end < 0 {
			end = len(input) - offset
		} else {
			next = offset + end + 1
		}
		text := strings.TrimSuffix(input[offset:offset+end], "\r")
		lines = append(lines, Line{Text: text, Number: n, Offset: offset})
		offset = next
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1].Text) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// #endregion lines

// #region uints
// Uints reads one or more blank-separated unsigned integers of bitSize bits
// from a line. Leading and trailing blanks are allowed.
func Uints(l Line, bitSize int) ([]uint64, error) {
	c := l.Cursor()
	c.Blanks()
	if c.Done() {
		return nil, Errorf(c.Pos(), "expected at least one integer, found empty line")
	}
	var out []uint64
	for !c.Done() {
		v, err := c.Uint(bitSize)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if c.Blanks() == 0 && !c.Done() {
			return nil, Errorf(c.Pos(), "expected whitespace, found %s", describe(c.Peek(), false))
		}
	}
	return out, nil
}

// #endregion uints
