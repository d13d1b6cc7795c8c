package logging

import "time"

// #region run-entry
// RunEntry is the provenance of one solver invocation.
type RunEntry struct {
	RunID    string
	Day      int
	Part     int
	Source   string // "example" | "real" | "inline" | "rpc"
	Digest   string
	Answer   string
	Solved   bool
	Cached   bool
	Duration time.Duration
	Err      error
}

// #endregion run-entry
