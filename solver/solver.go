package solver

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Solver answers both parts of one daily puzzle.
type Solver interface {
	// Day is the puzzle's day number, 1..25.
	Day() int
	// Name is the puzzle title.
	Name() string
	// Part1 solves the first half of the puzzle.
	Part1(ctx context.Context, input string) (int64, error)
	// Part2 solves the second half of the puzzle.
	Part2(ctx context.Context, input string) (int64, error)
}

// Answer is one part's value and how long it took.
type Answer struct {
	Value   int64
	Elapsed time.Duration
}

// String renders the value in decimal.
func (a Answer) String() string {
	return strconv.FormatInt(a.Value, 10)
}

// Result holds both answers for a day.
type Result struct {
	Day     int
	Name    string
	Part1   Answer
	Part2   Answer
	Elapsed time.Duration
}

// PartFunc is the shape shared by Solver.Part1 and Solver.Part2.
type PartFunc func(ctx context.Context, input string) (int64, error)

// Time runs fn once and measures it.
func Time(ctx context.Context, fn PartFunc, input string) (Answer, error) {
	start := time.Now()
	v, err := fn(ctx, input)
	return Answer{Value: v, Elapsed: time.Since(start)}, err
}

// Run solves both parts of s on input, part 1 first. The first failing part
// aborts the run and its error is returned wrapped with the day and part.
func Run(ctx context.Context, s Solver, input string) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSolver
	}
	res := Result{Day: s.Day(), Name: s.Name()}
	start := time.Now()

	var err error
	if res.Part1, err = Time(ctx, s.Part1, input); err != nil {
		return res, fmt.Errorf("day %02d part 1: %w", res.Day, err)
	}
	if res.Part2, err = Time(ctx, s.Part2, input); err != nil {
		return res, fmt.Errorf("day %02d part 2: %w", res.Day, err)
	}
	res.Elapsed = time.Since(start)
	return res, nil
}
