// Package wrap provides a signed integer confined to an inclusive [min, max]
// range by modular arithmetic, as used for toroidal positions.
//
// Adding any delta, however large and of either sign, yields the value
// congruent to value+delta modulo the range width, re-based into [min, max]:
//
//	n      = max - min + 1
//	result = ((value + delta - min) mod n + n) mod n + min
//
// The delta is reduced modulo n before it is added, so multiplying a velocity
// by thousands of time steps never overflows an intermediate.
//
// Errors:
//
//   - ErrInvalidRange: min > max, or the width does not fit in T.
//   - ErrOutOfRange: the initial value lies outside [min, max].
package wrap
