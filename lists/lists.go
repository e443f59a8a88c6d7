// Package lists reconciles two columns of location IDs: the total distance
// between the lists paired smallest to smallest, and a similarity score
// weighting each left ID by how often it appears on the right.
package lists

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedInput indicates a line that is not two decimal integers.
var ErrMalformedInput = errors.New("lists: malformed input")

// Parse splits input into its left and right columns. Blank lines are skipped.
func Parse(input string) (left, right []int64, err error) {
	for n, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d has %d columns", ErrMalformedInput, n+1, len(fields))
		}
		a, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
		}
		b, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
		}
		left, right = append(left, a), append(right, b)
	}
	return left, right, nil
}

// Distance sums |l-r| over both lists paired in sorted order. The inputs are
// not reordered.
func Distance(left, right []int64) int64 {
	l, r := slices.Sorted(slices.Values(left)), slices.Sorted(slices.Values(right))
	var total int64
	for i := range min(len(l), len(r)) {
		d := l[i] - r[i]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

// Similarity sums each left value times its number of occurrences in right.
func Similarity(left, right []int64) int64 {
	counts := make(map[int64]int64, len(right))
	for _, v := range right {
		counts[v]++
	}
	var total int64
	for _, v := range left {
		total += v * counts[v]
	}
	return total
}

// Solver answers the historian hysteria puzzle.
type Solver struct{}

// Day returns 1.
func (Solver) Day() int { return 1 }

// Name returns the puzzle title.
func (Solver) Name() string { return "Historian Hysteria" }

// Part1 returns the total distance.
func (Solver) Part1(_ context.Context, input string) (int64, error) {
	l, r, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Distance(l, r), nil
}

// Part2 returns the similarity score.
func (Solver) Part2(_ context.Context, input string) (int64, error) {
	l, r, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Similarity(l, r), nil
}
