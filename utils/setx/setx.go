// File: setx.go
// Title: Generic Set Type and Algebra
// Description: Implements a generic hash set over comparable element types
//              with the usual membership and set-algebra operations.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

package setx

// Set is an unordered collection of unique elements.
// The zero value is not usable; construct sets with New, Of, or
// FromSlice. A Set is not safe for concurrent mutation.
type Set[T comparable] map[T]struct{}

// ===============================
// Construction
// ===============================

// New creates an empty set
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// Of creates a set containing the given elements
func Of[T comparable](elements ...T) Set[T] {
	set := make(Set[T], len(elements))
	for _, e := range elements {
		set[e] = struct{}{}
	}
	return set
}

// FromSlice creates a set from the elements of a slice, dropping
// duplicates
func FromSlice[T comparable](slice []T) Set[T] {
	return Of(slice...)
}

// ===============================
// Membership
// ===============================

// Add inserts an element, reporting whether it was newly added
func (s Set[T]) Add(element T) bool {
	if _, ok := s[element]; ok {
		return false
	}
	s[element] = struct{}{}
	return true
}

// AddAll inserts every given element
func (s Set[T]) AddAll(elements ...T) {
	for _, e := range elements {
		s[e] = struct{}{}
	}
}

// Remove deletes an element, reporting whether it was present
func (s Set[T]) Remove(element T) bool {
	if _, ok := s[element]; !ok {
		return false
	}
	delete(s, element)
	return true
}

// Contains checks whether the element is in the set
func (s Set[T]) Contains(element T) bool {
	_, ok := s[element]
	return ok
}

// Len returns the number of elements in the set
func (s Set[T]) Len() int {
	return len(s)
}

// IsEmpty checks whether the set has no elements
func (s Set[T]) IsEmpty() bool {
	return len(s) == 0
}

// ===============================
// Set Algebra
// ===============================

// Union returns a new set with the elements of both sets
func (s Set[T]) Union(other Set[T]) Set[T] {
	result := make(Set[T], len(s)+len(other))
	for e := range s {
		result[e] = struct{}{}
	}
	for e := range other {
		result[e] = struct{}{}
	}
	return result
}

// Intersect returns a new set with the elements present in both sets
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	result := make(Set[T])
	for e := range small {
		if _, ok := large[e]; ok {
			result[e] = struct{}{}
		}
	}
	return result
}

// Difference returns a new set with the elements of s that are not in
// other
func (s Set[T]) Difference(other Set[T]) Set[T] {
	result := make(Set[T])
	for e := range s {
		if _, ok := other[e]; !ok {
			result[e] = struct{}{}
		}
	}
	return result
}

// SymmetricDifference returns a new set with the elements present in
// exactly one of the two sets
func (s Set[T]) SymmetricDifference(other Set[T]) Set[T] {
	result := make(Set[T])
	for e := range s {
		if _, ok := other[e]; !ok {
			result[e] = struct{}{}
		}
	}
	for e := range other {
		if _, ok := s[e]; !ok {
			result[e] = struct{}{}
		}
	}
	return result
}

// IsSubsetOf checks whether every element of s is in other
func (s Set[T]) IsSubsetOf(other Set[T]) bool {
	if len(s) > len(other) {
		return false
	}
	for e := range s {
		if _, ok := other[e]; !ok {
			return false
		}
	}
	return true
}

// Equal checks whether both sets contain exactly the same elements
func (s Set[T]) Equal(other Set[T]) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// ===============================
// Conversion
// ===============================

// Values returns the elements of the set as a slice in unspecified
// order
func (s Set[T]) Values() []T {
	values := make([]T, 0, len(s))
	for e := range s {
		values = append(values, e)
	}
	return values
}

// Clone returns a copy of the set
func (s Set[T]) Clone() Set[T] {
	cloned := make(Set[T], len(s))
	for e := range s {
		cloned[e] = struct{}{}
	}
	return cloned
}
