// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the
//              utilities toolkit, from emptiness predicates to substring
//              scanning primitives.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial documentation

// Package stringx provides extended string operations for the utilities
// toolkit.
//
// # Overview
//
// The package groups its functions by concern:
//
//   - Scanning primitives (scanner.go): IndexOf, LastIndexOf, Contains,
//     StartsWith/EndsWith, CountMatches, and IndexOfDifference, together
//     with their position-bounded and case-insensitive variants. All are
//     total functions: every input shape, including empty operands and
//     needles longer than the haystack, yields a defined result and never
//     a panic. Indices are byte offsets and -1 is the "not found"
//     sentinel, never an error.
//   - Predicates and transforms (stringx.go): IsEmpty/IsBlank, Unicode-safe
//     Truncate and Reverse, padding, line splitting, and defaulting.
//   - Case conversion (case.go): snake_case, camelCase, PascalCase, and
//     kebab-case plus capitalization helpers.
//   - Random generation (random.go): charset-based secure random strings
//     and UUID identifiers.
//
// # Contracts worth knowing
//
// The empty needle matches everywhere: IndexOf(h, "") is 0, Contains and
// the anchored checks report true. CountMatches is the one deliberate
// exception; it returns 0 for an empty needle because a non-overlapping
// count of empty matches is unbounded.
//
// The case-insensitive variants fold both operands with simple case
// mapping and then run the case-sensitive algorithm; they are defined by
// fold-then-compare, not by a separate scan.
package stringx
