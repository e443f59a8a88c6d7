package region

import (
	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/mask"
)

// cornerShapes lists the four L-shaped neighbourhoods checked per cell as
// (vertical, horizontal) pairs: up-right, up-left, down-left, down-right.
var cornerShapes = [4][2]grid.Dir{
	{grid.Up, grid.Right},
	{grid.Up, grid.Left},
	{grid.Down, grid.Left},
	{grid.Down, grid.Right},
}

// Perimeter counts the (cell, side) pairs of r whose neighbour is off-grid or
// holds a different character.
func (r Region) Perimeter(g *grid.Grid) int {
	fencing := FencingQuery{Kind: r.Kind}
	total := 0
	for _, p := range r.Cells {
		total += grid.Query[int](g, fencing, p)
	}
	return total
}

// Sides returns the number of corners of r's boundary polygon, which equals
// its number of straight sides. Holes contribute their own corners.
func (r Region) Sides() int {
	m, err := mask.New(r.Cells, 1)
	if err != nil {
		// only an empty region fails here
		return 0
	}
	total := 0
	for _, p := range r.Cells {
		total += Corners(m, p)
	}
	return total
}

// Corners classifies the four L-shaped neighbourhoods of p against m and
// returns how many of them form a convex or concave corner.
func Corners(m *mask.Mask, p grid.Pos) int {
	n := 0
	for _, shape := range cornerShapes {
		v, h := p.Add(shape[0]), p.Add(shape[1])
		hasV, hasH := m.Has(v), m.Has(h)
		switch {
		case !hasV && !hasH:
			n++ // convex
		case hasV && hasH && !m.Has(v.Add(shape[1])):
			n++ // concave
		}
	}
	return n
}

// Measure computes the perimeter and side count of r.
func (r Region) Measure(g *grid.Grid) Measured {
	return Measured{Region: r, Perimeter: r.Perimeter(g), Sides: r.Sides()}
}
