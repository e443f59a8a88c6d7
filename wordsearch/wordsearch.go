// Package wordsearch counts word occurrences in a letter grid: straight XMAS
// rays in all eight directions, and X-shaped pairs of MAS diagonals.
//
// Both counts are row-partitioned map-reduce jobs. Each row is scanned by its
// own errgroup task against the shared immutable grid and adds its tally to a
// single atomic counter.
package wordsearch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridlab/grid"
)

// ErrMalformedInput wraps grid parse failures in Solver.
var ErrMalformedInput = errors.New("wordsearch: malformed input")

// Word is the term searched for by CountWord.
const Word = "XMAS"

// CountWord counts the rays spelling word in any of the 8 compass directions.
// Overlapping and reversed occurrences count separately.
func CountWord(ctx context.Context, g *grid.Grid, word string) (int64, error) {
	first := []rune(word)
	if len(first) == 0 {
		return 0, nil
	}
	return countRows(ctx, g, func(p grid.Pos, ch rune) int64 {
		if ch != first[0] {
			return 0
		}
		var n int64
		for _, d := range grid.Compass {
			if g.RayMatches(p, d, word) {
				n++
			}
		}
		return n
	})
}

// CountCross counts 3×3 blocks whose two diagonals each read MAS in either
// direction through a centre A.
func CountCross(ctx context.Context, g *grid.Grid) (int64, error) {
	return countRows(ctx, g, func(p grid.Pos, _ rune) int64 {
		b, ok := g.Block(p, 3, 3)
		if !ok || b[4] != 'A' {
			return 0
		}
		if isMS(b[0], b[8]) && isMS(b[2], b[6]) {
			return 1
		}
		return 0
	})
}

// isMS reports whether the diagonal ends are M and S in some order.
func isMS(a, b rune) bool {
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}

// countRows sums score over every cell, one errgroup task per row.
func countRows(ctx context.Context, g *grid.Grid, score func(p grid.Pos, ch rune) int64) (int64, error) {
	var total atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for r := 0; r < g.Rows(); r++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var n int64
			for c := 0; c < g.Cols(); c++ {
				p := grid.P(r, c)
				n += score(p, g.At(p))
			}
			total.Add(n)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}

// Solver answers the word search puzzle.
type Solver struct{}

// Day returns 4.
func (Solver) Day() int { return 4 }

// Name returns the puzzle title.
func (Solver) Name() string { return "Ceres Search" }

// Part1 counts XMAS rays.
func (Solver) Part1(ctx context.Context, input string) (int64, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return CountWord(ctx, g, Word)
}

// Part2 counts X-MAS crosses.
func (Solver) Part2(ctx context.Context, input string) (int64, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return CountCross(ctx, g)
}
