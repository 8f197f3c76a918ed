// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex provides date arithmetic, flexible parsing,
//              and calendar inspection helpers.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

// Package timex provides date-centric helpers on top of the standard
// time package.
//
// Overview
//
// All functions are pure: they take time.Time values and return new
// ones, never mutating inputs or consulting shared state. Parsing
// functions try a list of well-known layouts and report failures as
// structured errors from the core/errors package.
//
// Key capabilities include:
//   - Flexible parsing (ParseFlexible, ParseDate) across common layouts
//   - Calendar arithmetic with month-end clamping (AddDays, AddMonths, AddYears)
//   - Whole-day distances and age computation (DaysBetween, Age)
//   - Period boundaries (StartOfDay, EndOfDay, StartOfMonth, EndOfMonth)
//   - Classification (IsWeekend, IsBetween, IsSameDay, IsLeapYear)
//   - Selection (Min, Max, Clamp)
//
// Month arithmetic clamps instead of normalizing: adding one month to
// January 31 yields the last day of February, not the beginning of
// March. This matches how billing periods and anniversaries are
// usually computed.
package timex
