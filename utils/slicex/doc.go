// File: doc.go
// Title: Package Documentation for slicex
// Description: Package slicex provides generic slice utilities and the
//              toolkit's comparison-based sorting core.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial documentation

// Package slicex provides generic slice utilities and the toolkit's
// comparison-based sorting core.
//
// # Sorting
//
// Sorting is done by randomized quicksort with three-way partitioning
// (sort.go). The pivot of every partition step is drawn uniformly at
// random, so sorted and adversarial inputs stay at the expected
// O(n log n); the draw never affects the result order of distinct
// elements. All sort entry points return a new slice and leave the input
// untouched.
//
// The sort is NOT stable: elements that compare as equal may appear in
// any relative order. Callers that need stability must disambiguate
// equal elements through the comparator, for example with
// comparex.Chain.
//
//	sorted := slicex.Sort([]int{7, 1, 6, 3, 5, 8, 2, 9, 4})
//	byLocale := slicex.SortWith(words, comparex.Locale(language.German))
//
// For reproducible pivot sequences in tests, construct a Sorter directly
// and seed it:
//
//	sorter := slicex.NewSorter(comparex.Natural[int]()).WithSeed(42)
//
// # Everything else
//
// The remaining helpers (slicex.go) are nil-safe, pure transformations:
// Filter, Map, Reduce, Chunk, Unique, Union/Intersect/Difference,
// search and grouping functions, and slice creation helpers. A nil input
// slice yields a nil (or zero) result rather than a panic.
package slicex
