// File: comparex.go
// Title: Comparator Contract and Standard Orderings
// Description: Implements the three-way Comparator contract consumed by sorting
//              helpers across the toolkit, together with the standard
//              orderings: natural ordering for ordered types, reversed and
//              chained comparators, key-derived comparators, case-insensitive
//              string ordering, locale-aware collation, and time ordering.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation with standard orderings

package comparex

import (
	"cmp"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator defines a total order over T. It returns a negative value if
// a orders before b, zero if they are equivalent, and a positive value if
// a orders after b. Implementations must satisfy antisymmetry
// (Compare(a,b) == -Compare(b,a)), transitivity, and reflexivity
// (Compare(a,a) == 0); the toolkit does not detect contract violations,
// it merely produces an unspecified (but non-crashing) order for them.
type Comparator[T any] func(a, b T) int

// Natural returns the native ordering of an ordered type. For floating
// point types a NaN orders before any other value (the ordering of
// strconv-style comparison); this keeps the comparator total but makes
// the relative placement of multiple NaNs unspecified.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// Reversed returns a comparator with the opposite order of c
func Reversed[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Chain returns a comparator that applies the given comparators in order,
// using each next comparator only to break ties left by the previous one.
// An empty chain treats all values as equivalent.
func Chain[T any](comparators ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range comparators {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Comparing derives a comparator from a key extraction function using the
// natural ordering of the key type
func Comparing[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ComparingWith derives a comparator from a key extraction function and an
// explicit comparator for the key type
func ComparingWith[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// IgnoreCase returns a string comparator that folds both operands with
// simple case mapping before comparing. Strings that differ only in case
// are equivalent under this ordering.
func IgnoreCase() Comparator[string] {
	return func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

// Locale returns a string comparator backed by the collation rules of the
// given language. Collators carry internal buffers, so the returned
// comparator is not safe for concurrent use; derive one comparator per
// goroutine when sorting in parallel.
func Locale(tag language.Tag, opts ...collate.Option) Comparator[string] {
	c := collate.New(tag, opts...)
	return func(a, b string) int {
		return c.CompareString(a, b)
	}
}

// TimeAsc returns the chronological ordering of time values
func TimeAsc() Comparator[time.Time] {
	return func(a, b time.Time) int {
		return a.Compare(b)
	}
}

// TimeDesc returns the reverse chronological ordering of time values
func TimeDesc() Comparator[time.Time] {
	return Reversed(TimeAsc())
}

// FromLess adapts a less-than predicate into a three-way comparator
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	}
}
