package pipeline

import (
	"fmt"
	"sort"
)

// Registry maps day numbers to solvers.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns a registry holding the given solvers.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[int]Solver)}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register adds s. Registering the same day twice is a wiring bug and panics.
func (r *Registry) Register(s Solver) {
	if _, dup := r.solvers[s.Day()]; dup {
		panic(fmt.Sprintf("pipeline: day %d registered twice", s.Day()))
	}
	r.solvers[s.Day()] = s
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
