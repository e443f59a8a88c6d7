package region_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/mask"
	"github.com/katalvlaran/gridlab/region"
)

const (
	smallGarden = `AAAA
BBCD
BBCC
EEEC`

	nestedGarden = `OOOOO
OXOXO
OOOOO
OXOXO
OOOOO`

	eShaped = `EEEEE
EXXXX
EEEEE
EXXXX
EEEEE`

	diagonalTouch = `AAAAAA
AAABBA
AAABBA
ABBAAA
ABBAAA
AAAAAA`

	largeGarden = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE`
)

//----------------------------------------------------------------------------//
// Find
//----------------------------------------------------------------------------//

func TestFind_SmallGarden(t *testing.T) {
	g := grid.MustParse(smallGarden)

	cases := []struct {
		kind      rune
		area      int
		perimeter int
		sides     int
	}{
		{'A', 4, 10, 4},
		{'B', 4, 8, 4},
		{'C', 4, 10, 8},
		{'D', 1, 4, 4},
		{'E', 3, 8, 4},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			regions := region.Find(g, tc.kind)
			require.Len(t, regions, 1)
			r := regions[0]
			assert.Equal(t, tc.kind, r.Kind)
			assert.Equal(t, tc.area, r.Area())
			assert.Equal(t, tc.perimeter, r.Perimeter(g))
			assert.Equal(t, tc.sides, r.Sides())
		})
	}
}

func TestFind_CellsSortedRowMajor(t *testing.T) {
	g := grid.MustParse(smallGarden)
	regions := region.Find(g, 'B')
	require.Len(t, regions, 1)
	assert.Equal(t, []grid.Pos{grid.P(1, 0), grid.P(1, 1), grid.P(2, 0), grid.P(2, 1)}, regions[0].Cells)
	assert.True(t, regions[0].Contains(grid.P(2, 1)))
	assert.False(t, regions[0].Contains(grid.P(0, 0)))
	assert.Equal(t, "B[4]@(1,0)", regions[0].String())
}

func TestFind_SingleCell(t *testing.T) {
	g := grid.MustParse(smallGarden)
	regions := region.Find(g, 'D')
	require.Len(t, regions, 1)
	assert.Equal(t, region.Region{Kind: 'D', Cells: []grid.Pos{grid.P(1, 3)}}, regions[0])
}

func TestFind_MissingKind(t *testing.T) {
	g := grid.MustParse(smallGarden)
	assert.Empty(t, region.Find(g, 'Z'))
}

// TestFind_SameKindSeparateRegions checks that one character can form several
// regions: the 'X' cells of the nested garden are four isolated plots.
func TestFind_SameKindSeparateRegions(t *testing.T) {
	g := grid.MustParse(nestedGarden)
	xs := region.Find(g, 'X')
	require.Len(t, xs, 4)
	for _, r := range xs {
		assert.Equal(t, 1, r.Area())
		assert.Equal(t, 4, r.Perimeter(g))
	}
	os := region.Find(g, 'O')
	require.Len(t, os, 1)
	assert.Equal(t, 21, os[0].Area())
	assert.Equal(t, 36, os[0].Perimeter(g))
	assert.Equal(t, 20, os[0].Sides(), "outer square plus four square holes")
}

func TestFind_LargeGardenAreas(t *testing.T) {
	g := grid.MustParse(largeGarden)
	var areas []int
	for _, r := range region.Find(g, 'I') {
		areas = append(areas, r.Area())
	}
	assert.ElementsMatch(t, []int{4, 14}, areas)
}

// TestFind_Partition verifies, on random grids, that the regions of each
// character are disjoint, cover exactly that character's cells, and are
// maximal (no same-valued 4-neighbours split across regions).
func TestFind_Partition(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for trial := 0; trial < 25; trial++ {
		rows, cols := 1+r.Intn(15), 1+r.Intn(15)
		var sb strings.Builder
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				sb.WriteByte(byte('a' + r.Intn(3)))
			}
			sb.WriteByte('\n')
		}
		g := grid.MustParse(sb.String())

		for _, kind := range g.Unique() {
			owner := make(map[grid.Pos]int)
			for i, reg := range region.Find(g, kind) {
				for _, p := range reg.Cells {
					_, dup := owner[p]
					require.False(t, dup, "cell %v assigned twice", p)
					require.Equal(t, kind, g.At(p))
					owner[p] = i
				}
			}
			want := g.FindAll(grid.Is(kind))
			require.Len(t, owner, len(want))
			for _, c := range want {
				i, ok := owner[c.Pos]
				require.True(t, ok, "cell %v not covered", c.Pos)
				for _, n := range g.Neighbors(c.Pos, grid.Conn4) {
					if g.At(n) == kind {
						require.Equal(t, i, owner[n], "adjacent %v and %v split", c.Pos, n)
					}
				}
			}
		}
	}
}

func TestAll_CoversGrid(t *testing.T) {
	g := grid.MustParse(largeGarden)
	total := 0
	for _, r := range region.All(g) {
		total += r.Area()
	}
	assert.Equal(t, g.Len(), total)
	assert.Len(t, region.All(g), 11)
}

//----------------------------------------------------------------------------//
// Corners
//----------------------------------------------------------------------------//

func TestCorners_SingleCell(t *testing.T) {
	m, err := mask.New([]grid.Pos{grid.P(0, 0)}, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, region.Corners(m, grid.P(0, 0)))
}

// TestCorners_LShape has one concave corner at the inside of the L.
//
//	X.
//	XX
func TestCorners_LShape(t *testing.T) {
	cells := []grid.Pos{grid.P(0, 0), grid.P(1, 0), grid.P(1, 1)}
	m, err := mask.New(cells, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, region.Corners(m, grid.P(0, 0)))
	assert.Equal(t, 2, region.Corners(m, grid.P(1, 0)), "one convex plus the concave notch")
	assert.Equal(t, 2, region.Corners(m, grid.P(1, 1)))
	assert.Equal(t, 6, region.Region{Kind: 'X', Cells: cells}.Sides())
}

func TestSides_EmptyRegion(t *testing.T) {
	assert.Zero(t, region.Region{Kind: 'Q'}.Sides())
}

//----------------------------------------------------------------------------//
// Analyze
//----------------------------------------------------------------------------//

func TestAnalyze_Costs(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		fence int
		bulk  int
	}{
		{"Small", smallGarden, 140, 80},
		{"Nested", nestedGarden, 772, 436},
		{"EShaped", eShaped, 692, 236},
		{"DiagonalTouch", diagonalTouch, 1184, 368},
		{"Large", largeGarden, 1930, 1206},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := region.Analyze(context.Background(), grid.MustParse(tc.text))
			require.NoError(t, err)
			assert.Equal(t, tc.fence, sum.FenceCost)
			assert.Equal(t, tc.bulk, sum.BulkCost)
		})
	}
}

func TestAnalyze_DeterministicAcrossWorkers(t *testing.T) {
	g := grid.MustParse(largeGarden)
	base, err := region.Analyze(context.Background(), g, region.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{0, 2, 8} {
		sum, err := region.Analyze(context.Background(), g, region.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, base, sum, "workers=%d", w)
	}
}

func TestAnalyze_OnRegionHook(t *testing.T) {
	var seen []string
	_, err := region.Analyze(context.Background(), grid.MustParse(smallGarden),
		region.WithOnRegion(func(m region.Measured) { seen = append(seen, m.String()) }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A[4]@(0,0)", "B[4]@(1,0)", "C[4]@(1,2)", "D[1]@(1,3)", "E[3]@(3,0)"}, seen)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := region.Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, region.ErrGridNil)

	_, err = region.Analyze(context.Background(), grid.MustParse("A"), region.WithWorkers(-1))
	assert.ErrorIs(t, err, region.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = region.Analyze(ctx, grid.MustParse(largeGarden))
	assert.ErrorIs(t, err, context.Canceled)
}
