package robots

import "context"

// Solver answers the restroom redoubt puzzle.
type Solver struct {
	// Options configure the floor, duration and formation search.
	Options []Option
}

// Day returns 14.
func (Solver) Day() int { return 14 }

// Name returns the puzzle title.
func (Solver) Name() string { return "Restroom Redoubt" }

// Part1 returns the safety factor after the configured number of seconds.
func (s Solver) Part1(_ context.Context, input string) (int64, error) {
	o, err := buildOptions(s.Options)
	if err != nil {
		return 0, err
	}
	swarm, err := Parse(input, o.Dimensions)
	if err != nil {
		return 0, err
	}
	swarm.Timeshift(o.Seconds)
	return swarm.SafetyFactor(), nil
}

// Part2 returns the first second the robots line up into a formation.
func (s Solver) Part2(ctx context.Context, input string) (int64, error) {
	o, err := buildOptions(s.Options)
	if err != nil {
		return 0, err
	}
	swarm, err := Parse(input, o.Dimensions)
	if err != nil {
		return 0, err
	}
	return FindFormation(ctx, swarm, s.Options...)
}
