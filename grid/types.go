package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input text has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Pos is a (Row, Col) coordinate. Validity relative to a grid is checked by
// Grid.OnGrid, not by the type itself.
type Pos struct {
	Row, Col int
}

// P is shorthand for Pos{Row: row, Col: col}.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Add returns p translated by d.
func (p Pos) Add(d Dir) Pos {
	return Pos{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Sub returns the offset that moves o onto p.
func (p Pos) Sub(o Pos) Dir {
	return Dir{DRow: p.Row - o.Row, DCol: p.Col - o.Col}
}

// Less orders positions row-major.
func (p Pos) Less(o Pos) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// String renders p as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Dir is a (DRow, DCol) offset. Components are usually in {-1, 0, 1} but the
// type does not restrict them.
type Dir struct {
	DRow, DCol int
}

// Compass directions. Up decreases the row index.
var (
	Up        = Dir{DRow: -1, DCol: 0}
	Down      = Dir{DRow: 1, DCol: 0}
	Left      = Dir{DRow: 0, DCol: -1}
	Right     = Dir{DRow: 0, DCol: 1}
	UpLeft    = Dir{DRow: -1, DCol: -1}
	UpRight   = Dir{DRow: -1, DCol: 1}
	DownLeft  = Dir{DRow: 1, DCol: -1}
	DownRight = Dir{DRow: 1, DCol: 1}
)

// Cardinal lists the 4 orthogonal directions: up, down, left, right.
var Cardinal = [4]Dir{Up, Down, Left, Right}

// Compass lists all 8 directions, orthogonal first.
var Compass = [8]Dir{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

// TurnRight rotates d 90° clockwise: Up→Right→Down→Left→Up.
func (d Dir) TurnRight() Dir {
	return Dir{DRow: d.DCol, DCol: -d.DRow}
}

// Scale multiplies both components by k.
func (d Dir) Scale(k int) Dir {
	return Dir{DRow: d.DRow * k, DCol: d.DCol * k}
}

// Neg returns the opposite offset.
func (d Dir) Neg() Dir {
	return Dir{DRow: -d.DRow, DCol: -d.DCol}
}

// String renders the four cardinal directions as arrows and anything else as
// "[drow,dcol]".
func (d Dir) String() string {
	switch d {
	case Up:
		return "^"
	case Down:
		return "v"
	case Left:
		return "<"
	case Right:
		return ">"
	}
	return fmt.Sprintf("[%d,%d]", d.DRow, d.DCol)
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// offsets returns the direction set for c.
func (c Connectivity) offsets() []Dir {
	if c == Conn8 {
		return Compass[:]
	}
	return Cardinal[:]
}

// Dimensions holds the size of a grid.
type Dimensions struct {
	Rows, Cols int
}

// Contains reports whether p lies inside a Rows×Cols area anchored at (0, 0).
// Every bounds check in the module goes through here.
// Complexity: O(1).
func (d Dimensions) Contains(p Pos) bool {
	return p.Row >= 0 && p.Row < d.Rows && p.Col >= 0 && p.Col < d.Cols
}

// Cell pairs a position with the character stored there.
type Cell struct {
	Pos Pos
	Ch  rune
}

// Finder is a per-character predicate used by FindAll.
type Finder interface {
	Check(ch rune) bool
}

// FinderFunc adapts a plain function to Finder.
type FinderFunc func(ch rune) bool

// Check calls f(ch).
func (f FinderFunc) Check(ch rune) bool { return f(ch) }

// Is returns a Finder matching any of the given characters.
func Is(chars ...rune) Finder {
	return FinderFunc(func(ch rune) bool {
		for _, c := range chars {
			if c == ch {
				return true
			}
		}
		return false
	})
}

// Querier computes a result of type T from a grid and a position. It is the
// grid's sole extension mechanism; queries never mutate the grid.
type Querier[T any] interface {
	Query(g *Grid, p Pos) T
}

// QueryFunc adapts a plain function to Querier.
type QueryFunc[T any] func(g *Grid, p Pos) T

// Query calls f(g, p).
func (f QueryFunc[T]) Query(g *Grid, p Pos) T { return f(g, p) }
