// File: parse.go
// Title: Numeric Parsing and Rounding Functions
// Description: Implements string-to-number conversion with structured errors,
//              numeric string probing, and decimal-place rounding helpers.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

package mathx

import (
	"math"
	"strconv"
	"strings"

	"github.com/icapri/utilities-sub001/core/errors"
)

// ===============================
// Parsing
// ===============================

// ParseInt converts a decimal string to int64.
// Surrounding whitespace is tolerated; any other malformation yields
// a structured parse error.
func ParseInt(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, errors.MathxParseError("ParseInt", s, err)
	}
	return value, nil
}

// ParseFloat converts a decimal string to float64.
// Surrounding whitespace is tolerated; any other malformation yields
// a structured parse error.
func ParseFloat(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.MathxParseError("ParseFloat", s, err)
	}
	return value, nil
}

// ParseIntOrDefault converts s to int64, falling back to defaultValue
// when the string cannot be parsed
func ParseIntOrDefault(s string, defaultValue int64) int64 {
	value, err := ParseInt(s)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseFloatOrDefault converts s to float64, falling back to defaultValue
// when the string cannot be parsed
func ParseFloatOrDefault(s string, defaultValue float64) float64 {
	value, err := ParseFloat(s)
	if err != nil {
		return defaultValue
	}
	return value
}

// IsNumeric checks whether s parses as a decimal number (integer or float)
func IsNumeric(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	_, err := strconv.ParseFloat(trimmed, 64)
	return err == nil
}

// ===============================
// Rounding
// ===============================

// Round rounds value to the nearest integer, halves away from zero
func Round(value float64) float64 {
	return math.Round(value)
}

// RoundTo rounds value to the given number of decimal places.
// Negative places round to the left of the decimal point,
// e.g. RoundTo(1234.5, -2) == 1200.
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// Truncate drops the fractional part of value toward zero
func Truncate(value float64) float64 {
	return math.Trunc(value)
}
