package patrol

import (
	"context"
	"fmt"
)

// Solver answers the guard patrol puzzle: part 1 counts the distinct cells the
// guard visits, part 2 counts the obstruction placements that cause a loop.
type Solver struct {
	// Options are forwarded to LoopObstructions in Part2.
	Options []Option
}

// Day returns 6.
func (Solver) Day() int { return 6 }

// Name returns the puzzle title.
func (Solver) Name() string { return "Guard Gallivant" }

// Part1 returns the number of distinct cells the guard visits before leaving.
func (s Solver) Part1(_ context.Context, input string) (int64, error) {
	lab, guard, err := parse(input)
	if err != nil {
		return 0, err
	}
	route := lab.Simulate(guard)
	return int64(len(route.Visited)), nil
}

// Part2 returns the number of cells where one new obstacle traps the guard.
func (s Solver) Part2(ctx context.Context, input string) (int64, error) {
	lab, guard, err := parse(input)
	if err != nil {
		return 0, err
	}
	loops, err := LoopObstructions(ctx, lab, guard, s.Options...)
	if err != nil {
		return 0, err
	}
	return int64(len(loops)), nil
}

func parse(input string) (*Lab, Guard, error) {
	lab, err := ParseLab(input)
	if err != nil {
		return nil, Guard{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	guard, err := lab.Guard()
	if err != nil {
		return nil, Guard{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return lab, guard, nil
}
