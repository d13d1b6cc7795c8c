package store

import (
	"errors"
	"time"
)

// #region run
// Run is one recorded solver invocation.
type Run struct {
	RunID     string
	Day       int
	Part      int
	Source    string
	Digest    string
	Value     int64
	Solved    bool
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// OK reports whether the run finished without error.
func (r Run) OK() bool {
	return r.Error == ""
}

// #endregion run

// #region errors
// ErrNotFound is returned when no row matches a lookup.
var ErrNotFound = errors.New("run not found")

// #endregion errors
