package pipeline

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/astutecat/aoc-2024/internal/parse"
)

func parseWords(input string) ([]string, error) {
	if input == "" {
		return nil, parse.Errorf(parse.Position{Line: 1, Column: 1}, "empty")
	}
	return strings.Fields(input), nil
}

func sumWords(words []string) (int64, error) {
	var total int64
	for _, w := range words {
		n, err := strconv.ParseInt(w, 10, 64)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func TestSolve(t *testing.T) {
	got, err := Solve("1 2 3", parseWords, sumWords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Solved(6) {
		t.Fatalf("expected 6, got %v", got)
	}
}

func TestSolve_ParseErrorPassesThrough(t *testing.T) {
	_, err := Solve("", parseWords, sumWords)
	var pe *parse.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *parse.ParseError, got %v", err)
	}
}

func TestSolve_FoldErrorWrapped(t *testing.T) {
	got, err := Solve("1 x", parseWords, sumWords)
	if err == nil {
		t.Fatal("expected error")
	}
	if got.Solved {
		t.Fatalf("expected unsolved answer on error, got %v", got)
	}
}

func TestAnswerString(t *testing.T) {
	if s := Solved(42).String(); s != "42" {
		t.Errorf("expected 42, got %s", s)
	}
	if s := Unsolved.String(); s != "-" {
		t.Errorf("expected -, got %s", s)
	}
}

func TestAbsDiff(t *testing.T) {
	if d := AbsDiff[uint32](3, 7); d != 4 {
		t.Errorf("expected 4, got %d", d)
	}
	if d := AbsDiff[int64](-2, 5); d != 7 {
		t.Errorf("expected 7, got %d", d)
	}
}

func TestPart(t *testing.T) {
	s := Funcs{
		Number: 9,
		One:    func(string) (Answer, error) { return Solved(1), nil },
	}
	if a, _ := Part(s, 1, ""); a != Solved(1) {
		t.Errorf("expected part one answer 1, got %v", a)
	}
	if a, err := Part(s, 2, ""); err != nil || a.Solved {
		t.Errorf("expected unsolved part two, got %v (err=%v)", a, err)
	}
	if _, err := Part(s, 3, ""); !errors.Is(err, ErrUnknownPart) {
		t.Errorf("expected ErrUnknownPart, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(Funcs{Number: 3}, Funcs{Number: 1})
	days := r.Days()
	if len(days) != 2 || days[0] != 1 || days[1] != 3 {
		t.Fatalf("expected [1 3], got %v", days)
	}
	if _, err := r.Lookup(2); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
	if s, err := r.Lookup(3); err != nil || s.Day() != 3 {
		t.Fatalf("expected day 3 solver, got %v (err=%v)", s, err)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate day")
		}
	}()
	NewRegistry(Funcs{Number: 1}, Funcs{Number: 1})
}
