// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the predicate and transform helpers of the
//              stringx package: emptiness and blankness checks, Unicode-safe
//              truncation and reversal, padding, line splitting, defaulting,
//              and validation helpers returning structured errors.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/icapri/utilities-sub001/core/errors"
)

// ===============================
// Predicates
// ===============================

// IsEmpty returns true if the string has length 0
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty returns true if the string is not empty
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// ===============================
// Transforms
// ===============================

// Truncate shortens a string to at most maxLen characters, appending the
// ellipsis when truncation happens. The function counts runes, not bytes,
// so multi-byte characters are never split. Strings that already fit are
// returned unchanged.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		// No room for the ellipsis; return the bare truncation.
		return string([]rune(s)[:maxLen])
	}

	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// Abbreviate truncates a string to maxLen characters using "..." as the
// ellipsis, the common display case of Truncate
func Abbreviate(s string, maxLen int) string {
	return Truncate(s, maxLen, "...")
}

// Reverse reverses a string while preserving multi-byte UTF-8 characters
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Repeat returns s concatenated n times; non-positive counts yield the
// empty string
func Repeat(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	return strings.Repeat(s, n)
}

// RemovePrefix returns s without the given prefix; s is returned unchanged
// when the prefix does not match
func RemovePrefix(s, prefix string) string {
	if StartsWith(s, prefix) {
		return s[len(prefix):]
	}
	return s
}

// RemoveSuffix returns s without the given suffix; s is returned unchanged
// when the suffix does not match
func RemoveSuffix(s, suffix string) string {
	if len(suffix) > 0 && EndsWith(s, suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}

// ===============================
// Padding
// ===============================

// PadLeft pads s on the left with the pad rune until it reaches width
// characters. Strings already at least width characters long are returned
// unchanged.
func PadLeft(s string, width int, pad rune) string {
	padding := buildPadding(s, width, pad)
	if padding == "" {
		return s
	}
	return padding + s
}

// PadRight pads s on the right with the pad rune until it reaches width
// characters
func PadRight(s string, width int, pad rune) string {
	padding := buildPadding(s, width, pad)
	if padding == "" {
		return s
	}
	return s + padding
}

// Center centers s within width characters using the pad rune, placing the
// extra padding character on the right when the total padding is odd
func Center(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	total := width - runeCount
	left := total / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), total-left)
}

// buildPadding returns the padding needed to grow s to width characters,
// or "" when none is needed
func buildPadding(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return ""
	}
	return strings.Repeat(string(pad), width-runeCount)
}

// ===============================
// Splitting and Defaulting
// ===============================

// SplitLines splits a string into lines, normalizing \r\n and \r endings
// to \n first
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// FirstNonEmpty returns the first non-empty string from the arguments,
// or "" when all are empty
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string from the arguments,
// or "" when all are blank
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// DefaultIfEmpty returns s, or defaultValue when s is empty
func DefaultIfEmpty(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// DefaultIfBlank returns s, or defaultValue when s is blank
func DefaultIfBlank(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// ===============================
// Validation
// ===============================

// ValidateRequired validates that a string is not empty
func ValidateRequired(s string) error {
	if IsEmpty(s) {
		return errors.StringxValidationError("validate_required", s, "non-empty string")
	}
	return nil
}

// ValidateNotBlank validates that a string is not blank
func ValidateNotBlank(s string) error {
	if IsBlank(s) {
		return errors.StringxValidationError("validate_not_blank", s, "non-blank string")
	}
	return nil
}

// ValidateLength validates that the rune count of a string lies within
// [minLen, maxLen]; a bound of 0 disables that side of the check
func ValidateLength(s string, minLen, maxLen int) error {
	length := utf8.RuneCountInString(s)

	if minLen > 0 && length < minLen {
		return errors.StringxValidationError("validate_length",
			fmt.Sprintf("%s (length: %d)", s, length),
			fmt.Sprintf("at least %d characters", minLen))
	}

	if maxLen > 0 && length > maxLen {
		return errors.StringxValidationError("validate_length",
			fmt.Sprintf("%s (length: %d)", s, length),
			fmt.Sprintf("at most %d characters", maxLen))
	}

	return nil
}

// TruncateWithValidation truncates a string after validating maxLen
func TruncateWithValidation(s string, maxLen int, ellipsis string) (string, error) {
	if maxLen < 0 {
		return "", errors.StringxInvalidInput("truncate_with_validation", maxLen)
	}
	if maxLen == 0 {
		return "", nil
	}
	return Truncate(s, maxLen, ellipsis), nil
}

// MustTruncate truncates a string, panicking on invalid input
func MustTruncate(s string, maxLen int, ellipsis string) string {
	result, err := TruncateWithValidation(s, maxLen, ellipsis)
	if err != nil {
		panic(err)
	}
	return result
}
