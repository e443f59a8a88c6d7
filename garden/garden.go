// Package garden prices fencing for the plots of a garden map by delegating
// region discovery and measurement to package region.
package garden

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/region"
)

// ErrMalformedInput wraps grid parse failures in Solver.
var ErrMalformedInput = errors.New("garden: malformed input")

// Solver answers the garden groups puzzle.
type Solver struct {
	// Options are forwarded to region.Analyze.
	Options []region.Option
}

// Day returns 12.
func (Solver) Day() int { return 12 }

// Name returns the puzzle title.
func (Solver) Name() string { return "Garden Groups" }

// Part1 returns Σ area×perimeter over every plot.
func (s Solver) Part1(ctx context.Context, input string) (int64, error) {
	sum, err := s.analyze(ctx, input)
	if err != nil {
		return 0, err
	}
	return int64(sum.FenceCost), nil
}

// Part2 returns Σ area×sides over every plot.
func (s Solver) Part2(ctx context.Context, input string) (int64, error) {
	sum, err := s.analyze(ctx, input)
	if err != nil {
		return 0, err
	}
	return int64(sum.BulkCost), nil
}

func (s Solver) analyze(ctx context.Context, input string) (region.Summary, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return region.Summary{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return region.Analyze(ctx, g, s.Options...)
}
