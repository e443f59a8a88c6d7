package robots

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/mask"
	"github.com/katalvlaran/gridlab/wrap"
)

var robotRE = regexp.MustCompile(`^p=(-?\d+),(-?\d+) v=(-?\d+),(-?\d+)$`)

// Robot is one swarm member. Row and Col wrap around the floor.
type Robot struct {
	Row, Col   wrap.Counter[int64]
	VRow, VCol int64
}

// Pos returns the robot's current cell.
func (r Robot) Pos() grid.Pos {
	return grid.P(int(r.Row.Value()), int(r.Col.Value()))
}

// Swarm is a set of robots on a rows×cols torus.
type Swarm struct {
	robots     []Robot
	rows, cols int64
}

// Parse reads one robot per non-blank line. Positions are given column first.
// Returns ErrMalformedInput for a bad line or an off-floor position.
func Parse(input string, dim grid.Dimensions) (*Swarm, error) {
	if dim.Rows <= 0 || dim.Cols <= 0 {
		return nil, fmt.Errorf("%w: floor %d×%d", ErrMalformedInput, dim.Rows, dim.Cols)
	}
	s := &Swarm{rows: int64(dim.Rows), cols: int64(dim.Cols)}
	for n, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := robotRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedInput, n+1, line)
		}
		var v [4]int64
		for i := range v {
			x, err := strconv.ParseInt(m[i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
			}
			v[i] = x
		}
		row, err := wrap.New(v[1], 0, s.rows-1)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
		}
		col, err := wrap.New(v[0], 0, s.cols-1)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
		}
		s.robots = append(s.robots, Robot{Row: row, Col: col, VRow: v[3], VCol: v[2]})
	}
	return s, nil
}

// Len returns the number of robots.
func (s *Swarm) Len() int { return len(s.robots) }

// Dim returns the floor size.
func (s *Swarm) Dim() grid.Dimensions {
	return grid.Dimensions{Rows: int(s.rows), Cols: int(s.cols)}
}

// Robots returns a copy of the robots in input order.
func (s *Swarm) Robots() []Robot { return slices.Clone(s.robots) }

// Clone returns an independent copy of s.
func (s *Swarm) Clone() *Swarm {
	return &Swarm{robots: slices.Clone(s.robots), rows: s.rows, cols: s.cols}
}

// Timeshift moves every robot forward by seconds, which may be negative.
func (s *Swarm) Timeshift(seconds int64) {
	for i := range s.robots {
		r := &s.robots[i]
		r.Row.Shift(r.VRow * seconds)
		r.Col.Shift(r.VCol * seconds)
	}
}

// Positions returns the current robot cells in input order.
func (s *Swarm) Positions() []grid.Pos {
	out := make([]grid.Pos, len(s.robots))
	for i, r := range s.robots {
		out[i] = r.Pos()
	}
	return out
}

// Quadrants returns top-left, top-right, bottom-left and bottom-right, each
// excluding the middle row and column.
func (s *Swarm) Quadrants() [4]Rect {
	midRow, midCol := int(s.rows/2), int(s.cols/2)
	last := grid.P(int(s.rows-1), int(s.cols-1))
	return [4]Rect{
		{TopLeft: grid.P(0, 0), BottomRight: grid.P(midRow-1, midCol-1)},
		{TopLeft: grid.P(0, midCol+1), BottomRight: grid.P(midRow-1, last.Col)},
		{TopLeft: grid.P(midRow+1, 0), BottomRight: grid.P(last.Row, midCol-1)},
		{TopLeft: grid.P(midRow+1, midCol+1), BottomRight: last},
	}
}

// InQuadrant counts the robots inside q.
func (s *Swarm) InQuadrant(q Rect) int {
	n := 0
	for _, r := range s.robots {
		if q.Contains(r.Pos()) {
			n++
		}
	}
	return n
}

// SafetyFactor multiplies the robot counts of the four quadrants.
func (s *Swarm) SafetyFactor() int64 {
	f := int64(1)
	for _, q := range s.Quadrants() {
		f *= int64(s.InQuadrant(q))
	}
	return f
}

// LongestRun returns the longest horizontal run of occupied cells.
func (s *Swarm) LongestRun() int {
	m, err := mask.New(s.Positions(), 0)
	if err != nil {
		return 0
	}
	dim, origin := m.Dim(), m.Origin()
	best := 0
	for r := 0; r < dim.Rows; r++ {
		run := 0
		for c := 0; c < dim.Cols; c++ {
			if m.Has(grid.P(origin.Row+r, origin.Col+c)) {
				run++
				best = max(best, run)
			} else {
				run = 0
			}
		}
	}
	return best
}

// String renders per-cell robot counts, one line per row, each line ending in
// a newline. Counts above 9 render as '+'.
func (s *Swarm) String() string {
	counts := make([]int, s.rows*s.cols)
	for _, r := range s.robots {
		counts[r.Row.Value()*s.cols+r.Col.Value()]++
	}
	var sb strings.Builder
	sb.Grow(len(counts) + int(s.rows))
	for i, n := range counts {
		switch {
		case n > 9:
			sb.WriteByte('+')
		default:
			sb.WriteByte(byte('0' + n))
		}
		if int64(i+1)%s.cols == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
