package robots

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Sentinel errors for swarm parsing and analysis.
var (
	// ErrMalformedInput indicates an unparseable robot line.
	ErrMalformedInput = errors.New("robots: malformed input")
	// ErrNoFormation indicates the search range holds no formation.
	ErrNoFormation = errors.New("robots: no formation found")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("robots: invalid option supplied")
)

// Defaults for the puzzle floor.
const (
	DefaultRows    = 103
	DefaultCols    = 101
	DefaultSeconds = 100
	DefaultMinRun  = 9
)

// Rect is an inclusive rectangle of floor cells.
type Rect struct {
	TopLeft, BottomRight grid.Pos
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p grid.Pos) bool {
	return p.Row >= r.TopLeft.Row && p.Row <= r.BottomRight.Row &&
		p.Col >= r.TopLeft.Col && p.Col <= r.BottomRight.Col
}

// Option configures the Solver and FindFormation via functional arguments.
type Option func(*Options)

// Options holds floor and search parameters.
type Options struct {
	// Dimensions is the floor size used by Solver when parsing.
	Dimensions grid.Dimensions
	// Seconds is how long Solver.Part1 lets the swarm move.
	Seconds int64
	// MinRun is the row run length that counts as a formation.
	MinRun int
	// Workers caps concurrent search chunks. 0 means GOMAXPROCS.
	Workers int

	err error
}

// DefaultOptions returns the puzzle floor of 103×101, 100 seconds, runs of 9
// and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Dimensions: grid.Dimensions{Rows: DefaultRows, Cols: DefaultCols},
		Seconds:    DefaultSeconds,
		MinRun:     DefaultMinRun,
	}
}

func (o *Options) fail(format string, args ...any) {
	o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
}

// WithDimensions sets the floor size. Both sides must be positive.
func WithDimensions(rows, cols int) Option {
	return func(o *Options) {
		if rows <= 0 || cols <= 0 {
			o.fail("dimensions must be positive (%d×%d)", rows, cols)
			return
		}
		o.Dimensions = grid.Dimensions{Rows: rows, Cols: cols}
	}
}

// WithSeconds sets the Part1 duration. s < 0 is an ErrOptionViolation.
func WithSeconds(s int64) Option {
	return func(o *Options) {
		if s < 0 {
			o.fail("Seconds cannot be negative (%d)", s)
			return
		}
		o.Seconds = s
	}
}

// WithMinRun sets the formation run length. n must be at least 1.
func WithMinRun(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("MinRun must be at least 1 (%d)", n)
			return
		}
		o.MinRun = n
	}
}

// WithWorkers caps concurrency. n < 0 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("Workers cannot be negative (%d)", n)
			return
		}
		o.Workers = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
