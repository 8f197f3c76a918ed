// File: mathx.go
// Title: Numeric Classification and Aggregation Functions
// Description: Implements generic numeric predicates, clamping, range checks,
//              and aggregation helpers over integer and floating-point types.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

package mathx

import (
	"golang.org/x/exp/constraints"
)

// Number covers all built-in integer and floating-point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// ===============================
// Classification Predicates
// ===============================

// IsEven checks whether n is divisible by two
func IsEven[T constraints.Integer](n T) bool {
	return n%2 == 0
}

// IsOdd checks whether n is not divisible by two
func IsOdd[T constraints.Integer](n T) bool {
	return n%2 != 0
}

// IsNatural checks whether n is a non-negative integer (0, 1, 2, ...)
func IsNatural[T constraints.Integer](n T) bool {
	return n >= 0
}

// IsPositive checks whether n is strictly greater than zero
func IsPositive[T Number](n T) bool {
	return n > 0
}

// IsNegative checks whether n is strictly less than zero
func IsNegative[T Number](n T) bool {
	return n < 0
}

// IsZero checks whether n equals zero
func IsZero[T Number](n T) bool {
	return n == 0
}

// ===============================
// Bounds and Ranges
// ===============================

// Abs returns the absolute value of n.
// Note: for the minimum value of a signed integer type the result
// overflows and is returned unchanged, matching integer arithmetic.
func Abs[T Number](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// Clamp restricts value to the inclusive interval [min, max].
// If min > max the bounds are swapped before clamping.
func Clamp[T Number](value, min, max T) T {
	if min > max {
		min, max = max, min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// InRange checks whether value lies in the inclusive interval [min, max]
func InRange[T Number](value, min, max T) bool {
	if min > max {
		min, max = max, min
	}
	return value >= min && value <= max
}

// Min returns the smaller of two values
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two values
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// ===============================
// Aggregation
// ===============================

// Sum adds up all elements of the slice. An empty or nil slice sums to zero.
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Average returns the arithmetic mean of the slice as float64.
// The second return value reports whether a mean exists; it is false
// for empty and nil slices.
func Average[T Number](values []T) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	var total float64
	for _, v := range values {
		total += float64(v)
	}
	return total / float64(len(values)), true
}

// MinOf returns the smallest element of the slice.
// The second return value is false for empty and nil slices.
func MinOf[T Number](values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

// MaxOf returns the largest element of the slice.
// The second return value is false for empty and nil slices.
func MaxOf[T Number](values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}
