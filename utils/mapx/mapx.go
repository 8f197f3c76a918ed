// File: mapx.go
// Title: Map Inspection and Transformation Functions
// Description: Implements generic helpers for inspecting, filtering,
//              transforming, and merging maps.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

package mapx

import (
	"cmp"

	"github.com/icapri/utilities-sub001/utils/slicex"
)

// ===============================
// Inspection
// ===============================

// Keys returns the keys of the map in unspecified order.
// Returns nil for a nil map.
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of the map in ascending natural order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slicex.Sort(Keys(m))
}

// Values returns the values of the map in unspecified order.
// Returns nil for a nil map.
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Has checks whether the map contains the given key
func Has[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// GetOrDefault returns the value for key, or defaultValue when the key
// is absent
func GetOrDefault[K comparable, V any](m map[K]V, key K, defaultValue V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return defaultValue
}

// IsEmpty checks whether the map is nil or has no entries
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// IsNotEmpty checks whether the map has at least one entry
func IsNotEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) > 0
}

// ===============================
// Transformation
// ===============================

// Invert swaps keys and values. When multiple keys map to the same
// value, one of them survives; which one is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	if m == nil {
		return nil
	}

	inverted := make(map[V]K, len(m))
	for k, v := range m {
		inverted[v] = k
	}
	return inverted
}

// Filter returns a new map containing the entries for which the
// predicate holds
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	if m == nil || predicate == nil {
		return nil
	}

	result := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// FilterKeys returns a new map keeping entries whose key satisfies the
// predicate
func FilterKeys[K comparable, V any](m map[K]V, predicate func(K) bool) map[K]V {
	if predicate == nil {
		return nil
	}
	return Filter(m, func(k K, _ V) bool { return predicate(k) })
}

// FilterValues returns a new map keeping entries whose value satisfies
// the predicate
func FilterValues[K comparable, V any](m map[K]V, predicate func(V) bool) map[K]V {
	if predicate == nil {
		return nil
	}
	return Filter(m, func(_ K, v V) bool { return predicate(v) })
}

// MapValues transforms every value with the mapper while keeping keys
func MapValues[K comparable, V, R any](m map[K]V, mapper func(V) R) map[K]R {
	if m == nil || mapper == nil {
		return nil
	}

	result := make(map[K]R, len(m))
	for k, v := range m {
		result[k] = mapper(v)
	}
	return result
}

// ===============================
// Combination
// ===============================

// Merge combines the given maps into a new one. Later maps win on key
// conflicts. Nil operands are skipped; merging nothing yields an empty
// map.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	size := 0
	for _, m := range maps {
		size += len(m)
	}

	result := make(map[K]V, size)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Clone returns a shallow copy of the map. Returns nil for a nil map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	cloned := make(map[K]V, len(m))
	for k, v := range m {
		cloned[k] = v
	}
	return cloned
}

// Equal checks whether two maps contain exactly the same entries
func Equal[K, V comparable](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		if bv, ok := b[k]; !ok || av != bv {
			return false
		}
	}
	return true
}
