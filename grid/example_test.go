package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// ExampleGrid_FindAll locates every trailhead ('0') in a small height map.
func ExampleGrid_FindAll() {
	g := grid.MustParse("0123\n1234\n8765\n9870")
	for _, c := range g.FindAll(grid.Is('0')) {
		fmt.Println(c.Pos)
	}
	// Output:
	// (0,0)
	// (3,3)
}

// ExampleQuery counts the orthogonal neighbours that differ from the centre
// cell, the building block of fence perimeters.
func ExampleQuery() {
	g := grid.MustParse("AAAA\nBBCD\nBBCC\nEEEC")
	fences := grid.QueryFunc[int](func(g *grid.Grid, p grid.Pos) int {
		here := g.At(p)
		n := 0
		for _, d := range grid.Cardinal {
			if ch, ok := g.Get(p.Add(d)); !ok || ch != here {
				n++
			}
		}
		return n
	})
	fmt.Println(grid.Query[int](g, fences, grid.P(1, 3)))
	fmt.Println(grid.Query[int](g, fences, grid.P(0, 1)))
	// Output:
	// 4
	// 2
}

// ExampleGrid_Ray reads up to four characters in a direction, stopping at the edge.
func ExampleGrid_Ray() {
	g := grid.MustParse("XMAS\n....")
	fmt.Println(string(g.Ray(grid.P(0, 0), grid.Right, 4)))
	fmt.Println(string(g.Ray(grid.P(0, 2), grid.Right, 4)))
	// Output:
	// XMAS
	// AS
}
