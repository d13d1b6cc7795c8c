package day01

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/astutecat/aoc-2024/internal/parse"
	"github.com/astutecat/aoc-2024/internal/pipeline"
)

const example = `3   4
4   3
2   5
1   3
3   9
3   3
`

func TestParseLists(t *testing.T) {
	got, err := ParseLists(example)
	if err != nil {
		t.Fatalf("ParseLists: %v", err)
	}
	want := Lists{
		Left:  []int64{3, 4, 2, 1, 3, 3},
		Right: []int64{4, 3, 5, 3, 9, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseLists mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLists_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"one-column", "3   4\n7\n"},
		{"three-columns", "3 4 5\n"},
		{"non-numeric", "3   x\n"},
		{"negative", "-3   4\n"},
		{"blank-middle", "3 4\n\n5 6\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLists(tt.input)
			var pe *parse.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *parse.ParseError, got %v", err)
			}
		})
	}
}

func TestPartOne_Example(t *testing.T) {
	got, err := PartOne(example)
	if err != nil {
		t.Fatalf("PartOne: %v", err)
	}
	if got != pipeline.Solved(11) {
		t.Fatalf("expected 11, got %v", got)
	}
}

func TestPartTwo_Example(t *testing.T) {
	got, err := PartTwo(example)
	if err != nil {
		t.Fatalf("PartTwo: %v", err)
	}
	if got != pipeline.Solved(31) {
		t.Fatalf("expected 31, got %v", got)
	}
}

func TestDistanceSum_OrderIndependent(t *testing.T) {
	a := Lists{Left: []int64{1, 5, 9}, Right: []int64{10, 2, 4}}
	b := Lists{Left: []int64{9, 1, 5}, Right: []int64{4, 10, 2}}
	da, _ := DistanceSum(a)
	db, _ := DistanceSum(b)
	if da != db {
		t.Fatalf("expected equal sums, got %d and %d", da, db)
	}
	if da != 1+1+1 {
		t.Fatalf("expected 3, got %d", da)
	}
}

func TestDistanceSum_DoesNotMutate(t *testing.T) {
	l := Lists{Left: []int64{3, 1}, Right: []int64{2, 4}}
	if _, err := DistanceSum(l); err != nil {
		t.Fatalf("DistanceSum: %v", err)
	}
	if l.Left[0] != 3 || l.Right[0] != 2 {
		t.Fatalf("input was reordered: %+v", l)
	}
}

func TestDistanceSum_LengthMismatch(t *testing.T) {
	_, err := DistanceSum(Lists{Left: []int64{1, 2}, Right: []int64{1}})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestSimilarity_EmptyRight(t *testing.T) {
	got, err := Similarity(Lists{Left: []int64{1, 2, 3}})
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestSimilarity_Overflow(t *testing.T) {
	_, err := PartTwo("9223372036854775807 9223372036854775807\n9223372036854775807 9223372036854775807\n")
	if err == nil {
		t.Fatal("expected overflow error for weighted max values")
	}

	_, err = Similarity(Lists{Left: []int64{math.MaxInt64 / 2, math.MaxInt64 / 2, 4}, Right: []int64{math.MaxInt64 / 2, 4}})
	if err == nil {
		t.Fatal("expected overflow error for running sum")
	}
}

func TestDistanceSum_Overflow(t *testing.T) {
	_, err := DistanceSum(Lists{Left: []int64{0, 1}, Right: []int64{math.MaxInt64, math.MaxInt64}})
	if err == nil {
		t.Fatal("expected overflow error")
	}

	got, err := DistanceSum(Lists{Left: []int64{0}, Right: []int64{math.MaxInt64}})
	if err != nil {
		t.Fatalf("DistanceSum: %v", err)
	}
	if got != math.MaxInt64 {
		t.Fatalf("expected %d, got %d", int64(math.MaxInt64), got)
	}
}

func TestCount(t *testing.T) {
	got := Count([]int64{4, 3, 5, 3, 9, 3})
	want := Frequencies{3: 3, 4: 1, 5: 1, 9: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Count mismatch (-want +got):\n%s", diff)
	}
}

func TestPartOne_EmptyInput(t *testing.T) {
	got, err := PartOne("")
	if err != nil {
		t.Fatalf("PartOne: %v", err)
	}
	if got != pipeline.Solved(0) {
		t.Fatalf("expected 0, got %v", got)
	}
}
