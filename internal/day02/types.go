package day02

// #region report
// Report is one line of readings.
type Report []uint32

// #endregion report

// #region status
// Status is the terminal classification of a report.
type Status int

const (
	Unsafe Status = iota
	Safe
)

func (s Status) String() string {
	if s == Safe {
		return "safe"
	}
	return "unsafe"
}

// #endregion status

// #region direction
// Direction is fixed by the first pair of a report.
type Direction int

const (
	Increasing Direction = iota
	Decreasing
)

func (d Direction) String() string {
	if d == Increasing {
		return "increasing"
	}
	return "decreasing"
}

// #endregion direction

// Allowed step sizes between consecutive readings, inclusive.
const (
	minStep = 1
	maxStep = 3
)
