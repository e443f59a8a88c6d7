package grid

import (
	"iter"
	"slices"
	"strings"
)

// Grid is an immutable rectangular table of characters stored row-major.
type Grid struct {
	rows, cols int
	cells      []rune
}

// Parse builds a Grid from text with one row per line and one cell per
// character. A trailing newline and "\r\n" line endings are accepted.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]rune, 0, len(lines)*cols)
	for _, line := range lines {
		row := []rune(line)
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid{rows: len(lines), cols: cols, cells: cells}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Dim returns the grid dimensions.
func (g *Grid) Dim() Dimensions {
	return Dimensions{Rows: g.rows, Cols: g.cols}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// OnGrid reports whether p lies within the grid boundaries.
func (g *Grid) OnGrid(p Pos) bool {
	return g.Dim().Contains(p)
}

// Get returns the character at p, or false if p is off-grid.
func (g *Grid) Get(p Pos) (rune, bool) {
	if !g.OnGrid(p) {
		return 0, false
	}
	return g.cells[g.Index(p)], true
}

// At returns the character at p. It panics if p is off-grid.
func (g *Grid) At(p Pos) rune {
	if !g.OnGrid(p) {
		panic("grid: position " + p.String() + " out of range")
	}
	return g.cells[g.Index(p)]
}

// Index maps p to its row-major offset: Row*Cols + Col.
// The result is meaningless for off-grid positions.
func (g *Grid) Index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major offset back to a position.
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.cols, Col: idx % g.cols}
}

// Cells yields every (position, character) pair in row-major order.
func (g *Grid) Cells() iter.Seq2[Pos, rune] {
	return func(yield func(Pos, rune) bool) {
		for i, ch := range g.cells {
			if !yield(g.Coordinate(i), ch) {
				return
			}
		}
	}
}

// Row returns row r as a string.
func (g *Grid) Row(r int) string {
	return string(g.cells[r*g.cols : (r+1)*g.cols])
}

// FindAll returns every cell whose character satisfies f, row-major.
// Complexity: O(R×C).
func (g *Grid) FindAll(f Finder) []Cell {
	var found []Cell
	for p, ch := range g.Cells() {
		if f.Check(ch) {
			found = append(found, Cell{Pos: p, Ch: ch})
		}
	}
	return found
}

// Unique returns the distinct characters present, sorted ascending.
func (g *Grid) Unique() []rune {
	seen := make(map[rune]struct{})
	out := make([]rune, 0, 8)
	for _, ch := range g.cells {
		if _, ok := seen[ch]; ok {
			continue
		}
		seen[ch] = struct{}{}
		out = append(out, ch)
	}
	slices.Sort(out)
	return out
}

// Neighbors returns the on-grid neighbours of p under the given connectivity.
func (g *Grid) Neighbors(p Pos, conn Connectivity) []Pos {
	offsets := conn.offsets()
	out := make([]Pos, 0, len(offsets))
	for _, d := range offsets {
		if n := p.Add(d); g.OnGrid(n) {
			out = append(out, n)
		}
	}
	return out
}

// String renders the grid back to text, one line per row, no trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.rows)
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(g.Row(r))
	}
	return sb.String()
}

// Runes returns a row-by-row copy of the cells, for callers that need a
// mutable variant of the grid.
func (g *Grid) Runes() [][]rune {
	out := make([][]rune, g.rows)
	for r := range out {
		out[r] = slices.Clone(g.cells[r*g.cols : (r+1)*g.cols])
	}
	return out
}

// Query runs q against g at p. The grid is never mutated by a query.
func Query[T any](g *Grid, q Querier[T], p Pos) T {
	return q.Query(g, p)
}
