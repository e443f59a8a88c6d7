package region

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridlab/grid"
)

// Sentinel errors for region analysis.
var (
	// ErrGridNil is returned when a nil grid is analysed.
	ErrGridNil = errors.New("region: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")
)

// Region is a maximal 4-connected set of cells sharing the character Kind.
// Cells are sorted row-major.
type Region struct {
	Kind  rune
	Cells []grid.Pos
}

// Area returns the number of cells.
func (r Region) Area() int { return len(r.Cells) }

// Contains reports whether p belongs to r.
func (r Region) Contains(p grid.Pos) bool {
	_, ok := slices.BinarySearchFunc(r.Cells, p, comparePos)
	return ok
}

// String renders the region as "kind[area]@first".
func (r Region) String() string {
	if len(r.Cells) == 0 {
		return fmt.Sprintf("%c[0]", r.Kind)
	}
	return fmt.Sprintf("%c[%d]@%v", r.Kind, len(r.Cells), r.Cells[0])
}

// comparePos orders positions row-major for slices.SortFunc and friends.
func comparePos(a, b grid.Pos) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

// Measured pairs a region with its derived geometry.
type Measured struct {
	Region
	Perimeter int
	Sides     int
}

// FenceCost returns area × perimeter.
func (m Measured) FenceCost() int { return m.Area() * m.Perimeter }

// BulkCost returns area × sides.
func (m Measured) BulkCost() int { return m.Area() * m.Sides }

// Summary aggregates an Analyze run.
type Summary struct {
	Regions   []Measured
	FenceCost int
	BulkCost  int
}

// Option configures Analyze via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for Analyze.
type Options struct {
	// Workers caps concurrent per-character analyses. 0 means GOMAXPROCS.
	Workers int

	// OnRegion is called once per measured region, in Summary order.
	OnRegion func(m Measured)

	err error
}

// DefaultOptions returns Options with GOMAXPROCS workers and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Workers:  0,
		OnRegion: func(Measured) {},
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

// WithOnRegion registers a per-region callback.
func WithOnRegion(fn func(m Measured)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRegion = fn
		}
	}
}
