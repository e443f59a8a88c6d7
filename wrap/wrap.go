package wrap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for counter construction.
var (
	// ErrInvalidRange indicates min > max or a width that overflows the type.
	ErrInvalidRange = errors.New("wrap: invalid range")
	// ErrOutOfRange indicates an initial value outside [min, max].
	ErrOutOfRange = errors.New("wrap: initial value out of range")
)

// Counter is a value of type T confined to [min, max]. The zero Counter is the
// single-value range [0, 0].
type Counter[T constraints.Signed] struct {
	value, min, max T
}

// New returns a Counter starting at initial on the range [min, max].
func New[T constraints.Signed](initial, min, max T) (Counter[T], error) {
	if min > max {
		return Counter[T]{}, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, min, max)
	}
	if width := max - min + 1; width <= 0 {
		return Counter[T]{}, fmt.Errorf("%w: width of [%d, %d] overflows", ErrInvalidRange, min, max)
	}
	if initial < min || initial > max {
		return Counter[T]{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, initial, min, max)
	}
	return Counter[T]{value: initial, min: min, max: max}, nil
}

// MustNew is like New but panics on an invalid range or initial value.
func MustNew[T constraints.Signed](initial, min, max T) Counter[T] {
	c, err := New(initial, min, max)
	if err != nil {
		panic(err)
	}
	return c
}

// wrap returns the in-range value congruent to c.value+delta.
// No intermediate leaves [0, n), so ranges up to the full width of T work.
func (c Counter[T]) wrap(delta T) T {
	n := c.max - c.min + 1
	off := c.value - c.min
	d := delta % n
	if d < 0 {
		d += n
	}
	// off+d reaches n here; step back by the room left instead.
	if d >= n-off {
		return c.min + off - (n - d)
	}
	return c.min + off + d
}

// Add returns a copy of c advanced by delta.
func (c Counter[T]) Add(delta T) Counter[T] {
	c.value = c.wrap(delta)
	return c
}

// Shift advances c by delta in place.
func (c *Counter[T]) Shift(delta T) {
	c.value = c.wrap(delta)
}

// Value returns the current value.
func (c Counter[T]) Value() T { return c.value }

// Min returns the lower bound of the range.
func (c Counter[T]) Min() T { return c.min }

// Max returns the upper bound of the range.
func (c Counter[T]) Max() T { return c.max }

// Is reports whether the current value equals v.
func (c Counter[T]) Is(v T) bool { return c.value == v }

// Equal compares raw values only; the ranges are not consulted.
func (c Counter[T]) Equal(o Counter[T]) bool { return c.value == o.value }

// String renders the value.
func (c Counter[T]) String() string {
	return fmt.Sprintf("%d", c.value)
}
