// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides generic numeric classification,
//              clamping, aggregation, parsing, and rounding helpers.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

// Package mathx provides extended numeric operations as pure functions.
//
// Overview
//
// The mathx package complements the standard math and strconv packages
// with generic helpers that work uniformly across integer and
// floating-point types. All functions are stateless and total over
// their numeric domain; fallible string conversions return structured
// errors from the core/errors package instead of raw strconv errors.
//
// Key capabilities include:
//   - Classification predicates (IsEven, IsOdd, IsNatural, IsPositive, IsNegative)
//   - Bounds helpers (Abs, Clamp, InRange, Min, Max)
//   - Slice aggregation (Sum, Average, MinOf, MaxOf)
//   - Parsing with structured errors (ParseInt, ParseFloat, IsNumeric)
//   - Rounding to decimal places (Round, RoundTo, Truncate)
//
// Usage Examples
//
// Classification and clamping:
//
//	mathx.IsEven(4)          // true
//	mathx.Clamp(15, 0, 10)   // 10
//	mathx.InRange(5, 1, 9)   // true
//
// Aggregation over slices:
//
//	mathx.Sum([]int{1, 2, 3})            // 6
//	mean, ok := mathx.Average([]int{2, 4}) // 3.0, true
//
// Parsing with fallback:
//
//	port := mathx.ParseIntOrDefault(portString, 8080)
package mathx
