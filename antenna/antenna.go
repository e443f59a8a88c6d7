// Package antenna locates the antinodes produced by pairs of same-frequency
// antennas on a city map.
//
// Every character other than '.' and '#' on the map is an antenna, and its
// character is its frequency. For two antennas a and b of one frequency:
//
//   - the simple antinodes sit at a-(b-a) and b+(b-a), the points twice as far
//     from one antenna as from the other;
//   - the resonant antinodes are every on-map point of the line through a and
//     b stepped in whole multiples of b-a, the antennas themselves included.
//
// Both sets are deduplicated across frequencies and returned row-major.
package antenna

import (
	"errors"
	"maps"
	"slices"

	"github.com/katalvlaran/gridlab/grid"
)

// ErrMalformedInput wraps grid parse failures in Solver.
var ErrMalformedInput = errors.New("antenna: malformed input")

// Map holds the antenna positions of a parsed city map, grouped by frequency.
type Map struct {
	dim      grid.Dimensions
	antennas map[rune][]grid.Pos
}

// NewMap collects the antennas of g.
func NewMap(g *grid.Grid) *Map {
	found := g.FindAll(grid.FinderFunc(func(ch rune) bool { return ch != '.' && ch != '#' }))
	m := &Map{dim: g.Dim(), antennas: make(map[rune][]grid.Pos)}
	for _, c := range found {
		m.antennas[c.Ch] = append(m.antennas[c.Ch], c.Pos)
	}
	return m
}

// Frequencies returns the distinct antenna frequencies, sorted.
func (m *Map) Frequencies() []rune {
	return slices.Sorted(maps.Keys(m.antennas))
}

// Antennas returns the row-major positions of the antennas tuned to freq.
func (m *Map) Antennas(freq rune) []grid.Pos {
	return slices.Clone(m.antennas[freq])
}

func (m *Map) onMap(p grid.Pos) bool { return m.dim.Contains(p) }

// Antinodes returns the distinct on-map simple antinodes.
func (m *Map) Antinodes() []grid.Pos {
	return m.collect(func(a, b grid.Pos, add func(grid.Pos)) {
		// b is visited as the first antenna of the reversed pair
		add(a.Add(b.Sub(a).Neg()))
	})
}

// Harmonics returns the distinct on-map resonant antinodes.
func (m *Map) Harmonics() []grid.Pos {
	return m.collect(func(a, b grid.Pos, add func(grid.Pos)) {
		step := b.Sub(a)
		for p := a.Add(step); m.onMap(p); p = p.Add(step) {
			add(p)
		}
	})
}

// collect runs emit for every ordered pair of distinct same-frequency
// antennas and returns the deduplicated on-map positions it adds.
func (m *Map) collect(emit func(a, b grid.Pos, add func(grid.Pos))) []grid.Pos {
	seen := make(map[grid.Pos]struct{})
	add := func(p grid.Pos) {
		if m.onMap(p) {
			seen[p] = struct{}{}
		}
	}
	for _, positions := range m.antennas {
		for i, a := range positions {
			for j, b := range positions {
				if i != j {
					emit(a, b, add)
				}
			}
		}
	}
	out := slices.Collect(maps.Keys(seen))
	slices.SortFunc(out, func(a, b grid.Pos) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}
