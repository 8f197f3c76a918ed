// File: doc.go
// Title: Package Documentation for comparex
// Description: Package comparex defines the Comparator contract and the
//              standard orderings used by the toolkit's sorting helpers.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial documentation

// Package comparex defines the three-way Comparator contract consumed by
// the sorting helpers in slicex and provides the standard orderings.
//
// A Comparator[T] is a total order: it returns a negative, zero, or
// positive value depending on whether its first argument orders before,
// equivalent to, or after its second. Orderings compose:
//
//	byLen := comparex.Comparing(func(s string) int { return len(s) })
//	byLenThenAlpha := comparex.Chain(byLen, comparex.Natural[string]())
//
// For human-facing string ordering the Locale constructor wraps the
// collation tables of golang.org/x/text:
//
//	german := comparex.Locale(language.German)
//	sorted := slicex.SortWith(words, german)
package comparex
