package region

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridlab/grid"
)

// Analyze measures every region of g and sums the fence and bulk costs.
// Each distinct character is analysed by its own goroutine reading the shared
// immutable grid and writing only its own result slot; the slots are combined
// afterwards in character order, so the Summary is deterministic.
// Returns ErrGridNil, ErrOptionViolation, or ctx's error if cancelled.
func Analyze(ctx context.Context, g *grid.Grid, opts ...Option) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Summary{}, o.err
	}

	kinds := g.Unique()
	slots := make([][]Measured, len(kinds))

	eg, ctx := errgroup.WithContext(ctx)
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg.SetLimit(workers)

	for i, kind := range kinds {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			regions := Find(g, kind)
			measured := make([]Measured, len(regions))
			for j, r := range regions {
				measured[j] = r.Measure(g)
			}
			slots[i] = measured
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, measured := range slots {
		for _, m := range measured {
			sum.Regions = append(sum.Regions, m)
			sum.FenceCost += m.FenceCost()
			sum.BulkCost += m.BulkCost()
			o.OnRegion(m)
		}
	}
	return sum, nil
}
