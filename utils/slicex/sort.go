// File: sort.go
// Title: Randomized Quicksort over Slices
// Description: Implements the comparison-based sorting core of the slicex
//              package: a randomized quicksort with three-way partitioning
//              driven by the comparex Comparator contract. All entry points
//              return sorted copies and never mutate their input. The sort
//              is NOT stable: equal elements may be reordered.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation of the sorting core

package slicex

import (
	"cmp"
	"math/rand"

	"github.com/icapri/utilities-sub001/utils/comparex"
)

// Sorter sorts slices under a fixed comparator using randomized quicksort
// with three-way partitioning. The pivot of every partition step is drawn
// uniformly at random, which keeps the expected running time at
// O(n log n) even for sorted or adversarial inputs; the random draw
// affects only performance, never the result order of distinct elements.
//
// The sort is not stable: the relative order of elements that compare as
// equal is unspecified. Inputs whose comparator is not a total order
// (such as float slices containing NaN under a raw numeric comparison)
// produce an unspecified but non-crashing placement.
type Sorter[T any] struct {
	compare comparex.Comparator[T]
	rng     *rand.Rand
}

// NewSorter creates a Sorter for the given comparator with a randomly
// seeded pivot source
func NewSorter[T any](compare comparex.Comparator[T]) *Sorter[T] {
	return &Sorter[T]{
		compare: compare,
		rng:     rand.New(rand.NewSource(rand.Int63())),
	}
}

// WithSeed fixes the pivot selection sequence so that tests can exercise
// specific partition paths deterministically
func (s *Sorter[T]) WithSeed(seed int64) *Sorter[T] {
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// Sort returns a sorted copy of the slice. The input is never mutated.
// Slices with fewer than two elements are returned as a trivial copy.
func (s *Sorter[T]) Sort(slice []T) []T {
	if slice == nil {
		return nil
	}
	if len(slice) < 2 {
		return Clone(slice)
	}
	return s.quicksort(slice)
}

// quicksort recursively sorts via three-way partitioning: elements are
// split into strictly-less, equal, and strictly-greater buckets around a
// randomly drawn pivot, and the result is sort(less) ++ equal ++
// sort(greater). Grouping equals in one pass keeps duplicate-heavy inputs
// from degrading the recursion.
func (s *Sorter[T]) quicksort(slice []T) []T {
	if len(slice) < 2 {
		return slice
	}

	pivot := slice[s.rng.Intn(len(slice))]

	var less, equal, greater []T
	for _, item := range slice {
		switch r := s.compare(item, pivot); {
		case r < 0:
			less = append(less, item)
		case r > 0:
			greater = append(greater, item)
		default:
			equal = append(equal, item)
		}
	}

	result := make([]T, 0, len(slice))
	result = append(result, s.quicksort(less)...)
	result = append(result, equal...)
	result = append(result, s.quicksort(greater)...)
	return result
}

// ===============================
// Package-Level Sorting Helpers
// ===============================

// Sort returns a sorted copy of the slice under the natural ordering of
// its element type. Not stable.
func Sort[T cmp.Ordered](slice []T) []T {
	if slice == nil {
		return nil
	}
	return NewSorter(comparex.Natural[T]()).Sort(slice)
}

// SortBy returns a sorted copy of the slice under a less-than predicate.
// Not stable.
func SortBy[T any](slice []T, less func(T, T) bool) []T {
	if slice == nil || less == nil {
		return nil
	}
	return NewSorter(comparex.FromLess(less)).Sort(slice)
}

// SortWith returns a sorted copy of the slice under an explicit
// comparator. Not stable.
func SortWith[T any](slice []T, compare comparex.Comparator[T]) []T {
	if slice == nil || compare == nil {
		return nil
	}
	return NewSorter(compare).Sort(slice)
}

// IsSorted checks if the slice is non-decreasing under natural ordering
func IsSorted[T cmp.Ordered](slice []T) bool {
	return IsSortedWith(slice, comparex.Natural[T]())
}

// IsSortedBy checks if the slice is non-decreasing under a less-than
// predicate. Nil predicates treat every slice as sorted.
func IsSortedBy[T any](slice []T, less func(T, T) bool) bool {
	if less == nil {
		return true
	}
	return IsSortedWith(slice, comparex.FromLess(less))
}

// IsSortedWith checks if the slice is non-decreasing under a comparator
func IsSortedWith[T any](slice []T, compare comparex.Comparator[T]) bool {
	if compare == nil {
		return true
	}
	for i := 1; i < len(slice); i++ {
		if compare(slice[i-1], slice[i]) > 0 {
			return false
		}
	}
	return true
}
