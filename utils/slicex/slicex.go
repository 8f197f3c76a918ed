// File: slicex.go
// Title: Core Slice Utilities
// Description: Implements slice transformation, search, set-style, and
//              grouping helpers with generic type support. All functions
//              are nil-safe and return new slices; inputs are never
//              mutated.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation with slice utilities

package slicex

import (
	"cmp"
	"fmt"
	"strings"
)

// ===============================
// Transformation
// ===============================

// Filter returns a new slice with the elements matching the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element using the mapper function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Reduce folds the slice into a single value
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	if slice == nil || reducer == nil {
		return initial
	}

	acc := initial
	for _, item := range slice {
		acc = reducer(acc, item)
	}
	return acc
}

// ForEach invokes fn for every element in order
func ForEach[T any](slice []T, fn func(T)) {
	if fn == nil {
		return
	}
	for _, item := range slice {
		fn(item)
	}
}

// Chunk splits the slice into consecutive chunks of at most size elements
func Chunk[T any](slice []T, size int) [][]T {
	if slice == nil || size <= 0 {
		return nil
	}

	var chunks [][]T
	for i := 0; i < len(slice); i += size {
		end := i + size
		if end > len(slice) {
			end = len(slice)
		}
		chunks = append(chunks, Clone(slice[i:end]))
	}
	return chunks
}

// Flatten concatenates a slice of slices into one slice
func Flatten[T any](nested [][]T) []T {
	if nested == nil {
		return nil
	}

	total := 0
	for _, s := range nested {
		total += len(s)
	}

	result := make([]T, 0, total)
	for _, s := range nested {
		result = append(result, s...)
	}
	return result
}

// Reverse returns a new slice with the elements in opposite order
func Reverse[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	for i, item := range slice {
		result[len(slice)-1-i] = item
	}
	return result
}

// ===============================
// Set-Style Operations
// ===============================

// Unique returns a new slice with duplicates removed, preserving the
// first occurrence order
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// UniqueBy returns a new slice with duplicates removed under a key
// function, preserving first occurrence order
func UniqueBy[T any, K comparable](slice []T, keyFunc func(T) K) []T {
	if slice == nil || keyFunc == nil {
		return nil
	}

	seen := make(map[K]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		key := keyFunc(item)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Union returns the deduplicated concatenation of two slices
func Union[T comparable](a, b []T) []T {
	combined := make([]T, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return Unique(combined)
}

// Intersect returns the elements of a that also occur in b, deduplicated
func Intersect[T comparable](a, b []T) []T {
	if a == nil || b == nil {
		return nil
	}

	inB := make(map[T]struct{}, len(b))
	for _, item := range b {
		inB[item] = struct{}{}
	}

	var result []T
	seen := make(map[T]struct{})
	for _, item := range a {
		if _, ok := inB[item]; !ok {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Difference returns the elements of a that do not occur in b
func Difference[T comparable](a, b []T) []T {
	if a == nil {
		return nil
	}
	if b == nil {
		return Clone(a)
	}

	inB := make(map[T]struct{}, len(b))
	for _, item := range b {
		inB[item] = struct{}{}
	}

	var result []T
	for _, item := range a {
		if _, ok := inB[item]; !ok {
			result = append(result, item)
		}
	}
	return result
}

// ===============================
// Search
// ===============================

// Contains checks if the slice contains the element
func Contains[T comparable](slice []T, element T) bool {
	return IndexOf(slice, element) != -1
}

// ContainsBy checks if any element matches the predicate
func ContainsBy[T any](slice []T, predicate func(T) bool) bool {
	return IndexOfBy(slice, predicate) != -1
}

// IndexOf returns the first index of the element, or -1 if absent
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// IndexOfBy returns the first index where the predicate holds, or -1
func IndexOfBy[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return -1
	}
	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index of the element, or -1 if absent
func LastIndexOf[T comparable](slice []T, element T) int {
	for i := len(slice) - 1; i >= 0; i-- {
		if slice[i] == element {
			return i
		}
	}
	return -1
}

// Find returns the first element matching the predicate
func Find[T any](slice []T, predicate func(T) bool) (T, bool) {
	var zero T
	if predicate == nil {
		return zero, false
	}
	for _, item := range slice {
		if predicate(item) {
			return item, true
		}
	}
	return zero, false
}

// FindLast returns the last element matching the predicate
func FindLast[T any](slice []T, predicate func(T) bool) (T, bool) {
	var zero T
	if predicate == nil {
		return zero, false
	}
	for i := len(slice) - 1; i >= 0; i-- {
		if predicate(slice[i]) {
			return slice[i], true
		}
	}
	return zero, false
}

// Every checks if all elements match the predicate; an empty slice
// satisfies every predicate
func Every[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return false
	}
	for _, item := range slice {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Some checks if at least one element matches the predicate
func Some[T any](slice []T, predicate func(T) bool) bool {
	return ContainsBy(slice, predicate)
}

// Count returns the number of elements matching the predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return 0
	}
	count := 0
	for _, item := range slice {
		if predicate(item) {
			count++
		}
	}
	return count
}

// ===============================
// Aggregation
// ===============================

// IsEmpty checks if the slice is nil or has no elements
func IsEmpty[T any](slice []T) bool {
	return len(slice) == 0
}

// IsNotEmpty checks if the slice has at least one element
func IsNotEmpty[T any](slice []T) bool {
	return len(slice) > 0
}

// Min returns the minimum element under natural ordering
func Min[T cmp.Ordered](slice []T) (T, bool) {
	return MinBy(slice, func(a, b T) bool { return a < b })
}

// Max returns the maximum element under natural ordering
func Max[T cmp.Ordered](slice []T) (T, bool) {
	return MinBy(slice, func(a, b T) bool { return a > b })
}

// MinBy returns the minimum element under a less-than predicate
func MinBy[T any](slice []T, less func(T, T) bool) (T, bool) {
	var zero T
	if len(slice) == 0 || less == nil {
		return zero, false
	}

	best := slice[0]
	for _, item := range slice[1:] {
		if less(item, best) {
			best = item
		}
	}
	return best, true
}

// MaxBy returns the maximum element under a less-than predicate
func MaxBy[T any](slice []T, less func(T, T) bool) (T, bool) {
	if less == nil {
		var zero T
		return zero, false
	}
	return MinBy(slice, func(a, b T) bool { return less(b, a) })
}

// ===============================
// Grouping and Slicing
// ===============================

// GroupBy groups elements by a key function
func GroupBy[T any, K comparable](slice []T, keyFunc func(T) K) map[K][]T {
	if slice == nil || keyFunc == nil {
		return nil
	}

	groups := make(map[K][]T)
	for _, item := range slice {
		key := keyFunc(item)
		groups[key] = append(groups[key], item)
	}
	return groups
}

// Partition splits the slice into elements matching and not matching the
// predicate
func Partition[T any](slice []T, predicate func(T) bool) ([]T, []T) {
	if slice == nil || predicate == nil {
		return nil, nil
	}

	var matching, rest []T
	for _, item := range slice {
		if predicate(item) {
			matching = append(matching, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matching, rest
}

// Take returns a copy of the first n elements
func Take[T any](slice []T, n int) []T {
	if slice == nil || n <= 0 {
		return nil
	}
	if n > len(slice) {
		n = len(slice)
	}
	return Clone(slice[:n])
}

// Drop returns a copy of the slice without its first n elements
func Drop[T any](slice []T, n int) []T {
	if slice == nil {
		return nil
	}
	if n <= 0 {
		return Clone(slice)
	}
	if n >= len(slice) {
		return nil
	}
	return Clone(slice[n:])
}

// ===============================
// Creation and Conversion
// ===============================

// Range creates a slice of integers in [start, end)
func Range(start, end int) []int {
	if start >= end {
		return nil
	}

	result := make([]int, end-start)
	for i := range result {
		result[i] = start + i
	}
	return result
}

// Repeat creates a slice with the element repeated n times
func Repeat[T any](element T, n int) []T {
	if n <= 0 {
		return nil
	}

	result := make([]T, n)
	for i := range result {
		result[i] = element
	}
	return result
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Equal checks if two slices have the same elements in the same order
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i, item := range a {
		if item != b[i] {
			return false
		}
	}
	return true
}

// EqualBy checks slice equality using an equality function
func EqualBy[T any](a, b []T, equal func(T, T) bool) bool {
	if len(a) != len(b) || equal == nil {
		return false
	}
	for i, item := range a {
		if !equal(item, b[i]) {
			return false
		}
	}
	return true
}

// Join converts elements to strings and joins them with the separator
func Join[T any](slice []T, separator string) string {
	if len(slice) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range slice {
		if i > 0 {
			builder.WriteString(separator)
		}
		fmt.Fprintf(&builder, "%v", item)
	}
	return builder.String()
}
