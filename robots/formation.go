package robots

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// FindFormation returns the earliest second in [0, rows×cols) at which the
// swarm holds a row run of at least MinRun robots. s is not modified.
// Returns ErrNoFormation, ErrOptionViolation or ctx's error.
func FindFormation(ctx context.Context, s *Swarm, opts ...Option) (int64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	limit := s.rows * s.cols
	chunk := max(limit/int64(workers*4), 1)

	var best atomic.Int64
	best.Store(math.MaxInt64)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for start := int64(0); start < limit; start += chunk {
		end := min(start+chunk, limit)
		eg.Go(func() error {
			if start >= best.Load() {
				return nil
			}
			swarm := s.Clone()
			swarm.Timeshift(start)
			for t := start; t < end && t < best.Load(); t++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if swarm.LongestRun() >= o.MinRun {
					storeMin(&best, t)
					return nil
				}
				swarm.Timeshift(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	if t := best.Load(); t != math.MaxInt64 {
		return t, nil
	}
	return 0, ErrNoFormation
}

// storeMin lowers v to t if t is smaller.
func storeMin(v *atomic.Int64, t int64) {
	for {
		cur := v.Load()
		if t >= cur || v.CompareAndSwap(cur, t) {
			return
		}
	}
}
