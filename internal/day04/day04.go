package day04

import (
	"github.com/astutecat/aoc-2024/internal/parse"
	"github.com/astutecat/aoc-2024/internal/pipeline"
)

// Word is the word part one searches for.
const Word = "XMAS"

// #region grid
// Point is a cell coordinate.
type Point struct {
	Row, Col int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Directions lists the eight neighbour offsets, clockwise from north.
var Directions = [8]Point{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Grid is a rectangular block of letters.
type Grid struct {
	Rows, Cols int
	cells      []byte
}

// At returns the letter at p, or false when p is outside the grid.
func (g Grid) At(p Point) (byte, bool) {
	if !g.Contains(p) {
		return 0, false
	}
	return g.cells[p.Row*g.Cols+p.Col], true
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Neighbours returns the in-bounds cells adjacent to p, including diagonals,
// in Directions order.
func (g Grid) Neighbours(p Point) []Point {
	out := make([]Point, 0, len(Directions))
	for _, d := range Directions {
		if n := p.Add(d); g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Points returns every cell in row-major order.
func (g Grid) Points() []Point {
	out := make([]Point, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out = append(out, Point{Row: r, Col: c})
		}
	}
	return out
}

// #endregion grid

// #region parse
// ParseGrid reads lines of ASCII letters. The column count comes from the
// first line and every other line must match it.
func ParseGrid(input string) (Grid, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return Grid{}, parse.Errorf(parse.Position{Line: 1, Column: 1}, "empty grid")
	}
	g := Grid{Rows: len(lines), Cols: len(lines[0].Text)}
	g.cells = make([]byte, 0, g.Rows*g.Cols)
	for _, line := range lines {
		if len(line.Text) != g.Cols {
			return Grid{}, parse.Errorf(line.Start(), "row has %d letters, expected %d", len(line.Text), g.Cols)
		}
		for i := 0; i < len(line.Text); i++ {
			ch := line.Text[i]
			if !isLetter(ch) {
				pos := line.Start()
				pos.Column += i
				pos.Offset += i
				return Grid{}, parse.Errorf(pos, "expected letter, found %q", ch)
			}
			g.cells = append(g.cells, ch)
		}
	}
	if g.Cols == 0 {
		return Grid{}, parse.Errorf(lines[0].Start(), "empty grid row")
	}
	return g, nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// #endregion parse

// #region search
// CountWord counts occurrences of word starting at any cell and reading in
// any of the eight directions. Palindromic words are counted once per
// direction they read in.
func (g Grid) CountWord(word string) int64 {
	if word == "" {
		return 0
	}
	var n int64
	for _, p := range g.Points() {
		if ch, _ := g.At(p); ch != word[0] {
			continue
		}
		for _, d := range Directions {
			if g.readsAt(word, p, d) {
				n++
			}
		}
	}
	return n
}

func (g Grid) readsAt(word string, p, d Point) bool {
	for i := 0; i < len(word); i++ {
		ch, ok := g.At(p)
		if !ok || ch != word[i] {
			return false
		}
		p = p.Add(d)
	}
	return true
}

// #endregion search

// #region entry-points
// PartOne counts XMAS in all eight directions. The search rule is not pinned
// down beyond the example answer of 18, which this reading reproduces.
func PartOne(input string) (pipeline.Answer, error) {
	return pipeline.Solve(input, ParseGrid, func(g Grid) (int64, error) {
		return g.CountWord(Word), nil
	})
}

// PartTwo has no implementation yet.
func PartTwo(input string) (pipeline.Answer, error) {
	return pipeline.Unsolved, nil
}

// New returns the day 4 solver.
func New() pipeline.Solver {
	return pipeline.Funcs{Number: 4, One: PartOne, Two: PartTwo}
}

// #endregion entry-points
