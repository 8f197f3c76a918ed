// File: scanner.go
// Title: Substring Scanning Primitives
// Description: Implements the substring search, containment, anchoring, and
//              difference-point primitives of the stringx package. All
//              functions are total: every input shape (empty operands,
//              needle longer than haystack, out-of-range positions) yields
//              a defined result and never a panic. Indices are byte offsets.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation of the scanning primitives

package stringx

import "strings"

// ===============================
// Index Search
// ===============================

// IndexOf returns the lowest byte index at which needle occurs in haystack,
// or -1 if needle is absent. An empty needle matches at index 0
// unconditionally. A needle longer than the haystack never matches.
func IndexOf(haystack, needle string) int {
	n, m := len(haystack), len(needle)
	if m == 0 {
		return 0
	}
	if m > n {
		return -1
	}

	for i := 0; i <= n-m; i++ {
		if matchAt(haystack, needle, i) {
			return i
		}
	}
	return -1
}

// IndexOfFrom returns the lowest byte index no smaller than start at which
// needle occurs in haystack, or -1 if there is no such occurrence. A
// negative start is clamped to 0 and a start beyond the end of haystack is
// clamped to len(haystack). An empty needle matches at the clamped start.
func IndexOfFrom(haystack, needle string, start int) int {
	n, m := len(haystack), len(needle)
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if m == 0 {
		return start
	}
	if m > n-start {
		return -1
	}

	for i := start; i <= n-m; i++ {
		if matchAt(haystack, needle, i) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the highest byte index at which needle occurs in
// haystack, or -1 if needle is absent. The scan runs from the end. An
// empty needle matches at index len(haystack).
func LastIndexOf(haystack, needle string) int {
	return LastIndexOfFrom(haystack, needle, len(haystack))
}

// LastIndexOfFrom returns the highest byte index no larger than start at
// which needle occurs in haystack, or -1 if there is no such occurrence.
// A start beyond the last viable position is clamped; a negative start
// yields -1. An empty needle matches at the clamped start.
func LastIndexOfFrom(haystack, needle string, start int) int {
	n, m := len(haystack), len(needle)
	if start < 0 {
		return -1
	}
	if start > n-m {
		start = n - m
	}
	// A needle longer than the haystack leaves no viable position.
	if start < 0 {
		return -1
	}
	if m == 0 {
		return start
	}

	for i := start; i >= 0; i-- {
		if matchAt(haystack, needle, i) {
			return i
		}
	}
	return -1
}

// ===============================
// Containment and Anchoring
// ===============================

// Contains reports whether needle occurs anywhere in haystack. An empty
// needle is contained in every haystack. The result is always consistent
// with IndexOf: Contains(h, n) == (IndexOf(h, n) != -1).
func Contains(haystack, needle string) bool {
	return IndexOf(haystack, needle) != -1
}

// ContainsIgnoreCase reports whether needle occurs anywhere in haystack,
// ignoring case. Both operands are folded with simple case mapping before
// the case-sensitive scan runs; there is no separate algorithm.
func ContainsIgnoreCase(haystack, needle string) bool {
	return Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// StartsWith reports whether s begins with prefix. An empty prefix is a
// prefix of every string, including the empty one; a non-empty prefix is
// never a prefix of a shorter string.
func StartsWith(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	return matchAt(s, prefix, 0)
}

// StartsWithIgnoreCase reports whether s begins with prefix, ignoring case
func StartsWithIgnoreCase(s, prefix string) bool {
	return StartsWith(strings.ToLower(s), strings.ToLower(prefix))
}

// EndsWith reports whether s ends with suffix. An empty suffix is a suffix
// of every string.
func EndsWith(s, suffix string) bool {
	if len(suffix) > len(s) {
		return false
	}
	return matchAt(s, suffix, len(s)-len(suffix))
}

// EndsWithIgnoreCase reports whether s ends with suffix, ignoring case
func EndsWithIgnoreCase(s, suffix string) bool {
	return EndsWith(strings.ToLower(s), strings.ToLower(suffix))
}

// ===============================
// Counting and Difference
// ===============================

// CountMatches counts the non-overlapping occurrences of needle in
// haystack, scanning left to right and advancing past each match by the
// full needle length. CountMatches("aaaa", "aa") is therefore 2, not 3.
// An empty needle yields 0; the infinite degenerate count is carved out.
func CountMatches(haystack, needle string) int {
	m := len(needle)
	if m == 0 {
		return 0
	}

	count := 0
	for i := 0; ; {
		j := IndexOfFrom(haystack, needle, i)
		if j == -1 {
			break
		}
		count++
		i = j + m
	}
	return count
}

// IndexOfDifference returns the first byte position at which a and b
// differ. Positions are compared up to the length of the shorter operand;
// if that entire prefix matches but the lengths differ, the result is the
// shorter length. Fully identical operands yield -1.
func IndexOfDifference(a, b string) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}

	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	if len(a) != len(b) {
		return limit
	}
	return -1
}

// matchAt reports whether needle occurs in haystack at byte offset i.
// The caller guarantees i+len(needle) <= len(haystack).
func matchAt(haystack, needle string, i int) bool {
	for j := 0; j < len(needle); j++ {
		if haystack[i+j] != needle[j] {
			return false
		}
	}
	return true
}
