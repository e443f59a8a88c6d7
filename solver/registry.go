package solver

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Sentinel errors for registry operations.
var (
	// ErrNilSolver is returned when a nil solver is registered or run.
	ErrNilSolver = errors.New("solver: solver is nil")
	// ErrDuplicateDay is returned when a day is registered twice.
	ErrDuplicateDay = errors.New("solver: day already registered")
	// ErrUnknownDay is returned by Lookup for an unregistered day.
	ErrUnknownDay = errors.New("solver: no solver registered for day")
)

// Registry maps day numbers to solvers. The zero value is not usable; call
// NewRegistry. It is not safe for concurrent registration.
type Registry struct {
	byDay map[int]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byDay: make(map[int]Solver)}
}

// Register adds each solver under its Day. Registration stops at the first
// nil solver or already-registered day.
func (r *Registry) Register(solvers ...Solver) error {
	for _, s := range solvers {
		if s == nil {
			return ErrNilSolver
		}
		if _, dup := r.byDay[s.Day()]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day())
		}
		r.byDay[s.Day()] = s
	}
	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	return slices.Sorted(maps.Keys(r.byDay))
}

// Len returns the number of registered solvers.
func (r *Registry) Len() int { return len(r.byDay) }
