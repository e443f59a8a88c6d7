package patrol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Sentinel errors for lab construction and patrol analysis.
var (
	// ErrNoGuard indicates the floor plan has no guard marker.
	ErrNoGuard = errors.New("patrol: no guard marker found")
	// ErrLabNil is returned when a nil lab is analysed.
	ErrLabNil = errors.New("patrol: lab is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("patrol: invalid option supplied")
	// ErrMalformedInput wraps parse failures in Solver.
	ErrMalformedInput = errors.New("patrol: malformed input")
)

// Floor plan characters.
const (
	Obstacle = '#'
	Visited  = 'X'
	Open     = '.'
)

// Movement is the kind of transition taken by one Guard.Step.
type Movement int

const (
	// Straight means the guard advanced one cell.
	Straight Movement = iota
	// Turned means the guard rotated clockwise in place.
	Turned
	// OffMap means the guard walked off the lab.
	OffMap
)

func (m Movement) String() string {
	switch m {
	case Straight:
		return "straight"
	case Turned:
		return "turned"
	case OffMap:
		return "off-map"
	}
	return fmt.Sprintf("Movement(%d)", int(m))
}

// Outcome is the terminal state of a simulation.
type Outcome int

const (
	// Exited means the guard left the lab.
	Exited Outcome = iota
	// StuckInLoop means the guard repeated a (position, facing) state.
	StuckInLoop
)

func (o Outcome) String() string {
	switch o {
	case Exited:
		return "exited"
	case StuckInLoop:
		return "stuck-in-loop"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Trial reports one obstruction experiment run by LoopObstructions.
type Trial struct {
	Obstruction grid.Pos
	Outcome     Outcome
	Steps       int
}

// Option configures LoopObstructions via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for LoopObstructions.
type Options struct {
	// Workers caps concurrent trials. 0 means GOMAXPROCS.
	Workers int

	// OnTrial is called once per trial after all trials finish, in
	// candidate (row-major) order, from the calling goroutine.
	OnTrial func(t Trial)

	err error
}

// DefaultOptions returns Options with GOMAXPROCS workers and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Workers: 0,
		OnTrial: func(Trial) {},
	}
}

// WithWorkers caps concurrency. n < 0 is recorded as ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnTrial registers a per-trial callback.
func WithOnTrial(fn func(t Trial)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrial = fn
		}
	}
}
