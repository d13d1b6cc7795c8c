package parse

import (
	"strconv"
	"strings"
)

// #region cursor
// Cursor is a forward-only byte scanner over a string that tracks line and
// column. Mark and Reset allow bounded backtracking.
type Cursor struct {
	input string
	i     int
	base  int // offset of input[0] within the enclosing text
	pos   Position
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return NewCursorAt(input, Position{Line: 1, Column: 1})
}

// NewCursorAt returns a cursor over a fragment of a larger text that begins
// at origin. Reported positions are relative to the larger text.
func NewCursorAt(input string, origin Position) *Cursor {
	return &Cursor{input: input, base: origin.Offset, pos: origin}
}

// Done reports whether the whole input has been consumed.
func (c *Cursor) Done() bool {
	return c.i >= len(c.input)
}

// Peek returns the current byte, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.Done() {
		return 0
	}
	return c.input[c.i]
}

// Advance consumes one byte.
func (c *Cursor) Advance() {
	if c.Done() {
		return
	}
	if c.input[c.i] == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	c.i++
	c.pos.Offset++
}

// Pos returns the current position.
func (c *Cursor) Pos() Position {
	return c.pos
}

// Mark returns a position that Reset can rewind to.
func (c *Cursor) Mark() Position {
	return c.pos
}

// Reset rewinds the cursor to a position previously returned by Mark.
func (c *Cursor) Reset(p Position) {
	c.pos = p
	c.i = p.Offset - c.base
}

// Rest returns the unconsumed input.
func (c *Cursor) Rest() string {
	return c.input[c.i:]
}

// #endregion cursor

// #region matchers
// Literal consumes s if the input continues with it.
func (c *Cursor) Literal(s string) bool {
	if !strings.HasPrefix(c.Rest(), s) {
		return false
	}
	for range len(s) {
		c.Advance()
	}
	return true
}

// Byte consumes b if it is the current byte.
func (c *Cursor) Byte(b byte) bool {
	if c.Done() || c.Peek() != b {
		return false
	}
	c.Advance()
	return true
}

// Blanks consumes spaces and tabs and returns how many were consumed.
func (c *Cursor) Blanks() int {
	n := 0
	for !c.Done() && isBlank(c.Peek()) {
		c.Advance()
		n++
	}
	return n
}

// Digits consumes a run of ASCII digits and returns it.
func (c *Cursor) Digits() string {
	start := c.i
	for !c.Done() && isDigit(c.Peek()) {
		c.Advance()
	}
	return c.input[start:c.i]
}

// Uint consumes an unsigned decimal integer that fits in bitSize bits.
// On failure the cursor is left where it started.
func (c *Cursor) Uint(bitSize int) (uint64, error) {
	start := c.Mark()
	digits := c.Digits()
	if digits == "" {
		return 0, Errorf(start, "expected unsigned integer, found %s", describe(c.Peek(), c.Done()))
	}
	v, err := strconv.ParseUint(digits, 10, bitSize)
	if err != nil {
		c.Reset(start)
		return 0, Errorf(start, "integer %q out of range for %d bits", digits, bitSize)
	}
	return v, nil
}

// #endregion matchers

// #region helpers
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func describe(b byte, eof bool) string {
	if eof {
		return "end of input"
	}
	return strconv.QuoteRune(rune(b))
}

// #endregion helpers
