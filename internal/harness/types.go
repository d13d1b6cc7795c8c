package harness

import (
	"errors"
	"fmt"
	"time"

	"github.com/astutecat/aoc-2024/internal/pipeline"
	"github.com/astutecat/aoc-2024/internal/store"
)

// #region source
// Source selects which input file a day is run against.
type Source int

const (
	Real Source = iota
	Example
)

func (s Source) String() string {
	if s == Example {
		return "example"
	}
	return "real"
}

// ParseSource is the inverse of Source.String.
func ParseSource(s string) (Source, error) {
	switch s {
	case "real", "":
		return Real, nil
	case "example":
		return Example, nil
	}
	return Real, fmt.Errorf("unknown input source %q", s)
}

// #endregion source

// #region config
// Config controls where inputs live and how runs are executed.
type Config struct {
	DataDir     string
	Parallelism int
	Cache       bool
}

// #endregion config

// #region run-store
// RunStore persists runs and serves cached answers.
type RunStore interface {
	RecordRun(rec store.Run) (string, error)
	CachedAnswer(day, part int, digest string) (store.Run, error)
}

// #endregion run-store

// #region result
// Result is the outcome of one day/part invocation.
type Result struct {
	Day      int
	Part     int
	Source   string
	Digest   string
	Answer   pipeline.Answer
	Err      error
	Duration time.Duration
	Cached   bool
	RunID    string
}

// #endregion result

// ErrInputNotFound is returned when no input file exists for a day.
var ErrInputNotFound = errors.New("input not found")
