package trail

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Solver answers the hoof it puzzle.
type Solver struct{}

// Day returns 10.
func (Solver) Day() int { return 10 }

// Name returns the puzzle title.
func (Solver) Name() string { return "Hoof It" }

// Part1 sums the scores of all trailheads.
func (Solver) Part1(ctx context.Context, input string) (int64, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, head := range Trailheads(g) {
		res, err := Walk(g, head, WithContext(ctx))
		if err != nil {
			return 0, err
		}
		total += int64(len(res.Summits))
	}
	return total, nil
}

// Part2 sums the ratings of all trailheads.
func (Solver) Part2(ctx context.Context, input string) (int64, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	memo := make(map[grid.Pos]int)
	var total int64
	for _, head := range Trailheads(g) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		total += int64(Rating(g, head, memo))
	}
	return total, nil
}

// parse accepts digits and '.' only.
func parse(input string) (*grid.Grid, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	for p, ch := range g.Cells() {
		if ch != '.' && !isHeight(ch) {
			return nil, fmt.Errorf("%w: unexpected %q at %v", ErrMalformedInput, ch, p)
		}
	}
	return g, nil
}
