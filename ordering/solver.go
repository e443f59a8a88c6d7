package ordering

import "context"

// Solver answers the print queue puzzle.
type Solver struct{}

// Day returns 5.
func (Solver) Day() int { return 5 }

// Name returns the puzzle title.
func (Solver) Name() string { return "Print Queue" }

// Part1 sums the middle pages of the correctly ordered updates.
func (Solver) Part1(ctx context.Context, input string) (int64, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.CorrectMiddles(ctx)
}

// Part2 repairs the incorrectly ordered updates and sums their middle pages.
func (Solver) Part2(ctx context.Context, input string) (int64, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.RepairedMiddles(ctx)
}
