package antenna

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Solver answers the resonant collinearity puzzle.
type Solver struct{}

// Day returns 8.
func (Solver) Day() int { return 8 }

// Name returns the puzzle title.
func (Solver) Name() string { return "Resonant Collinearity" }

// Part1 counts simple antinodes.
func (Solver) Part1(_ context.Context, input string) (int64, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	return int64(len(m.Antinodes())), nil
}

// Part2 counts resonant antinodes.
func (Solver) Part2(_ context.Context, input string) (int64, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	return int64(len(m.Harmonics())), nil
}

func parse(input string) (*Map, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return NewMap(g), nil
}
