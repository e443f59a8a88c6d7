package mask

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridlab/grid"
)

// Sentinel errors for mask construction.
var (
	// ErrNoPositions indicates an empty position set.
	ErrNoPositions = errors.New("mask: at least one position is required")
	// ErrNegativeBorder indicates a border width below zero.
	ErrNegativeBorder = errors.New("mask: border must be non-negative")
)

// Mask is a padded 2D table of 0/1 cells. A cell is 1 iff the corresponding
// position was in the set the mask was built from.
type Mask struct {
	cells      []uint8
	rows, cols int
	// origin is the original-space position stored at cells[0].
	origin grid.Pos
	count  int
}

// New builds a mask over positions with the given border on every side.
// Duplicate positions are counted once.
func New(positions []grid.Pos, border int) (*Mask, error) {
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}
	if border < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeBorder, border)
	}

	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		lo.Row, lo.Col = min(lo.Row, p.Row), min(lo.Col, p.Col)
		hi.Row, hi.Col = max(hi.Row, p.Row), max(hi.Col, p.Col)
	}

	m := &Mask{
		rows:   hi.Row - lo.Row + 1 + 2*border,
		cols:   hi.Col - lo.Col + 1 + 2*border,
		origin: grid.Pos{Row: lo.Row - border, Col: lo.Col - border},
	}
	m.cells = make([]uint8, m.rows*m.cols)
	for _, p := range positions {
		i := m.index(p)
		if m.cells[i] == 0 {
			m.cells[i] = 1
			m.count++
		}
	}

	return m, nil
}

// index maps an original-space position into storage. Callers check bounds.
func (m *Mask) index(p grid.Pos) int {
	return (p.Row-m.origin.Row)*m.cols + (p.Col - m.origin.Col)
}

// inBounds reports whether p falls inside the padded area.
func (m *Mask) inBounds(p grid.Pos) bool {
	r, c := p.Row-m.origin.Row, p.Col-m.origin.Col
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// Get returns the cell value at p (original coordinates), or false if p lies
// beyond the padded area.
func (m *Mask) Get(p grid.Pos) (uint8, bool) {
	if !m.inBounds(p) {
		return 0, false
	}
	return m.cells[m.index(p)], true
}

// Has reports whether p is in the set. Absent cells read as false.
func (m *Mask) Has(p grid.Pos) bool {
	v, _ := m.Get(p)
	return v == 1
}

// Dim returns the padded dimensions.
func (m *Mask) Dim() grid.Dimensions {
	return grid.Dimensions{Rows: m.rows, Cols: m.cols}
}

// Origin returns the original-space position of the padded top-left cell.
func (m *Mask) Origin() grid.Pos { return m.origin }

// Count returns the number of distinct positions set.
func (m *Mask) Count() int { return m.count }

// String renders the padded mask as rows of '0' and '1'.
func (m *Mask) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols + 1))
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range m.cells[r*m.cols : (r+1)*m.cols] {
			sb.WriteByte('0' + v)
		}
	}
	return sb.String()
}
