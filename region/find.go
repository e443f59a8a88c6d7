package region

import (
	"slices"

	"github.com/katalvlaran/gridlab/grid"
)

// AdjacentQuery returns the orthogonal neighbours of a position that hold Kind.
type AdjacentQuery struct {
	Kind rune
}

// Query implements grid.Querier.
func (q AdjacentQuery) Query(g *grid.Grid, p grid.Pos) []grid.Pos {
	adjacent := make([]grid.Pos, 0, 4)
	for _, d := range grid.Cardinal {
		n := p.Add(d)
		if ch, ok := g.Get(n); ok && ch == q.Kind {
			adjacent = append(adjacent, n)
		}
	}
	return adjacent
}

// FencingQuery counts the sides of a cell that need a fence around a Kind
// region: neighbours that are off-grid or hold a different character.
type FencingQuery struct {
	Kind rune
}

// Query implements grid.Querier.
func (q FencingQuery) Query(g *grid.Grid, p grid.Pos) int {
	total := 0
	for _, d := range grid.Cardinal {
		if ch, ok := g.Get(p.Add(d)); !ok || ch != q.Kind {
			total++
		}
	}
	return total
}

// Find returns every region of cells holding kind, ordered by first cell.
// If kind does not occur the result is empty.
//
// Behavior:
//  1. Scan row-major for cells holding kind.
//  2. From each not-yet-consumed cell, grow a component with an explicit
//     stack, consuming every 4-adjacent cell of the same kind.
//  3. Sort the component's cells row-major and record it.
//
// Time:   O(R×C).
// Memory: O(R×C) for consumed flags and output.
func Find(g *grid.Grid, kind rune) []Region {
	consumed := make([]bool, g.Len())
	adjacent := AdjacentQuery{Kind: kind}
	var regions []Region

	for _, seed := range g.FindAll(grid.Is(kind)) {
		i0 := g.Index(seed.Pos)
		if consumed[i0] {
			continue
		}
		consumed[i0] = true
		stack := []grid.Pos{seed.Pos}
		var cells []grid.Pos

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cells = append(cells, u)
			for _, v := range grid.Query[[]grid.Pos](g, adjacent, u) {
				if vi := g.Index(v); !consumed[vi] {
					consumed[vi] = true
					stack = append(stack, v)
				}
			}
		}
		slices.SortFunc(cells, comparePos)
		regions = append(regions, Region{Kind: kind, Cells: cells})
	}

	return regions
}

// All returns the regions of every distinct character in g, grouped by
// character in ascending order.
func All(g *grid.Grid) []Region {
	var out []Region
	for _, kind := range g.Unique() {
		out = append(out, Find(g, kind)...)
	}
	return out
}
