package patrol

import (
	"slices"
	"strings"

	"github.com/katalvlaran/gridlab/grid"
)

// Lab is a mutable floor plan. The zero value is an empty lab.
type Lab struct {
	dim   grid.Dimensions
	cells [][]rune
}

// NewLab copies g into a fresh Lab. g itself is never modified.
func NewLab(g *grid.Grid) *Lab {
	return &Lab{dim: g.Dim(), cells: g.Runes()}
}

// ParseLab parses text with grid.Parse and wraps the result in a Lab.
func ParseLab(text string) (*Lab, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	return NewLab(g), nil
}

// Dim returns the lab dimensions.
func (l *Lab) Dim() grid.Dimensions {
	return l.dim
}

// OnGrid reports whether p lies inside the lab.
func (l *Lab) OnGrid(p grid.Pos) bool {
	return l.dim.Contains(p)
}

// Get returns the character at p, or false if p is off-grid.
func (l *Lab) Get(p grid.Pos) (rune, bool) {
	if !l.OnGrid(p) {
		return 0, false
	}
	return l.cells[p.Row][p.Col], true
}

// IsObstacle reports whether p holds an obstacle. Off-grid cells do not.
func (l *Lab) IsObstacle(p grid.Pos) bool {
	ch, ok := l.Get(p)
	return ok && ch == Obstacle
}

// AddObstruction places an obstacle at p. It reports false if p is off-grid.
func (l *Lab) AddObstruction(p grid.Pos) bool {
	if !l.OnGrid(p) {
		return false
	}
	l.cells[p.Row][p.Col] = Obstacle
	return true
}

// mark records p as visited.
func (l *Lab) mark(p grid.Pos) {
	l.cells[p.Row][p.Col] = Visited
}

// Guard locates the guard marker, scanning row-major.
// Returns ErrNoGuard if none is present.
func (l *Lab) Guard() (Guard, error) {
	for r, row := range l.cells {
		for c, ch := range row {
			if d, ok := markerFacing(ch); ok {
				return Guard{Pos: grid.P(r, c), Facing: d}, nil
			}
		}
	}
	return Guard{}, ErrNoGuard
}

// markerFacing maps a guard marker to its facing.
func markerFacing(ch rune) (grid.Dir, bool) {
	switch ch {
	case '^':
		return grid.Up, true
	case '>':
		return grid.Right, true
	case 'v':
		return grid.Down, true
	case '<':
		return grid.Left, true
	}
	return grid.Dir{}, false
}

// Clone returns a deep copy that shares no storage with l.
func (l *Lab) Clone() *Lab {
	cells := make([][]rune, len(l.cells))
	for r, row := range l.cells {
		cells[r] = slices.Clone(row)
	}
	return &Lab{dim: l.dim, cells: cells}
}

// VisitedCount returns the number of cells marked visited.
func (l *Lab) VisitedCount() int {
	n := 0
	for _, row := range l.cells {
		for _, ch := range row {
			if ch == Visited {
				n++
			}
		}
	}
	return n
}

// VisitedCells returns the visited cells in row-major order.
func (l *Lab) VisitedCells() []grid.Pos {
	var out []grid.Pos
	for r, row := range l.cells {
		for c, ch := range row {
			if ch == Visited {
				out = append(out, grid.P(r, c))
			}
		}
	}
	return out
}

// String renders the floor plan, one line per row.
func (l *Lab) String() string {
	lines := make([]string, len(l.cells))
	for r, row := range l.cells {
		lines[r] = string(row)
	}
	return strings.Join(lines, "\n")
}
