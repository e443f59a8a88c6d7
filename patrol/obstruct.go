package patrol

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridlab/grid"
)

// LoopObstructions returns, row-major, every cell where a single new obstacle
// makes the guard loop forever. Candidates are the cells of the unobstructed
// route except the guard's start. lab is not modified.
//
// Each candidate is tried on its own Clone of lab in a bounded errgroup.
// Returns ErrLabNil, ErrOptionViolation, or ctx's error if cancelled.
func LoopObstructions(ctx context.Context, lab *Lab, start Guard, opts ...Option) ([]grid.Pos, error) {
	if lab == nil {
		return nil, ErrLabNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 1) unobstructed route gives the candidates
	base := lab.Clone().Simulate(start)
	candidates := make([]grid.Pos, 0, len(base.Visited))
	for _, p := range base.Visited {
		if p != start.Pos {
			candidates = append(candidates, p)
		}
	}

	// 2) one private clone per trial, one slot per candidate
	trials := make([]Trial, len(candidates))
	eg, ctx := errgroup.WithContext(ctx)
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg.SetLimit(workers)

	for i, p := range candidates {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trial := lab.Clone()
			trial.AddObstruction(p)
			route := trial.Simulate(start)
			trials[i] = Trial{Obstruction: p, Outcome: route.Outcome, Steps: route.Steps}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 3) collect in candidate order
	var loops []grid.Pos
	for _, t := range trials {
		o.OnTrial(t)
		if t.Outcome == StuckInLoop {
			loops = append(loops, t.Obstruction)
		}
	}
	return loops, nil
}
