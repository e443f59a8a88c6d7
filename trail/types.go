package trail

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Sentinel errors for trail exploration.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("trail: grid is nil")
	// ErrNotTrailhead is returned when the start cell is not a 0.
	ErrNotTrailhead = errors.New("trail: start is not a trailhead")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trail: invalid option supplied")
	// ErrMalformedInput wraps parse failures in Solver.
	ErrMalformedInput = errors.New("trail: malformed input")
)

// Heights of a trail's endpoints.
const (
	Trailhead = '0'
	Summit    = '9'
)

// Option configures Walk via functional arguments.
type Option func(*WalkOptions)

// WalkOptions holds parameters and callbacks for Walk.
type WalkOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called for every cell in visit order. A non-nil error
	// aborts the walk and is returned wrapped.
	OnVisit func(p grid.Pos, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	MaxDepth int

	err error
}

// DefaultOptions returns a background context, no depth limit and a no-op hook.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:     context.Background(),
		OnVisit: func(grid.Pos, int) error { return nil },
	}
}

// WithContext sets the walk's context.
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a per-cell callback.
func WithOnVisit(fn func(p grid.Pos, depth int) error) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration depth. d < 0 is recorded as
// ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WalkResult holds the outcome of Walk.
type WalkResult struct {
	// Order lists cells in the order they were visited.
	Order []grid.Pos
	// Depth maps each reached cell to its step count from the trailhead.
	Depth map[grid.Pos]int
	// Summits lists the reached height-9 cells in visit order.
	Summits []grid.Pos
}
