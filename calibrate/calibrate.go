// Package calibrate decides which calibration equations can be made true by
// inserting operators between their operands.
//
// Operators are evaluated strictly left to right, never by precedence. The
// available operators are addition, multiplication and decimal concatenation
// (12 || 345 = 12345).
package calibrate

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrMalformedInput indicates a line that is not "target: n n ...".
var ErrMalformedInput = errors.New("calibrate: malformed input")

// Operator combines the running result with the next operand.
type Operator func(acc, next int64) int64

// Add returns acc + next.
func Add(acc, next int64) int64 { return acc + next }

// Mul returns acc × next.
func Mul(acc, next int64) int64 { return acc * next }

// Concat appends the decimal digits of next to acc.
func Concat(acc, next int64) int64 {
	shift := int64(10)
	for v := next; v >= 10; v /= 10 {
		shift *= 10
	}
	return acc*shift + next
}

// Equation is a target value and the operands that must produce it.
type Equation struct {
	Target   int64
	Operands []int64
}

// Solvable reports whether some placement of ops between the operands
// evaluates to Target. An equation with no operands is never solvable.
func (e Equation) Solvable(ops ...Operator) bool {
	if len(e.Operands) == 0 {
		return false
	}
	return e.solve(ops, 1, e.Operands[0])
}

func (e Equation) solve(ops []Operator, i int, acc int64) bool {
	if i == len(e.Operands) {
		return acc == e.Target
	}
	for _, op := range ops {
		if e.solve(ops, i+1, op(acc, e.Operands[i])) {
			return true
		}
	}
	return false
}

// Parse reads one equation per non-blank line.
func Parse(input string) ([]Equation, error) {
	var eqs []Equation
	for n, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		target, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing ':'", ErrMalformedInput, n+1)
		}
		t, err := strconv.ParseInt(strings.TrimSpace(target), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
		}
		eq := Equation{Target: t}
		for _, f := range strings.Fields(rest) {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
			}
			eq.Operands = append(eq.Operands, v)
		}
		if len(eq.Operands) == 0 {
			return nil, fmt.Errorf("%w: line %d: no operands", ErrMalformedInput, n+1)
		}
		eqs = append(eqs, eq)
	}
	return eqs, nil
}

// TotalCalibration sums the targets of the solvable equations, checking
// equations in parallel.
func TotalCalibration(ctx context.Context, eqs []Equation, ops ...Operator) (int64, error) {
	var total atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, eq := range eqs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if eq.Solvable(ops...) {
				total.Add(eq.Target)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}

// Solver answers the bridge repair puzzle.
type Solver struct{}

// Day returns 7.
func (Solver) Day() int { return 7 }

// Name returns the puzzle title.
func (Solver) Name() string { return "Bridge Repair" }

// Part1 sums targets reachable with + and ×.
func (Solver) Part1(ctx context.Context, input string) (int64, error) {
	eqs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return TotalCalibration(ctx, eqs, Add, Mul)
}

// Part2 sums targets reachable with +, × and ||.
func (Solver) Part2(ctx context.Context, input string) (int64, error) {
	eqs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return TotalCalibration(ctx, eqs, Add, Mul, Concat)
}
