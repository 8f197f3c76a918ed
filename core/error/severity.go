// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for toolkit errors. Severity expresses
//              how much a failure impairs the caller, from recoverable input
//              problems up to internal faults that indicate a bug.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that the caller can typically
	// recover from, such as invalid user input or a failed validation.
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that prevents the requested
	// operation but leaves the caller in a consistent state.
	SeverityMedium

	// SeverityHigh indicates a serious error such as data that could not
	// be decoded or an operation that failed midway.
	SeverityHigh

	// SeverityCritical indicates an internal fault that points at a bug
	// in the toolkit or in the caller's contract usage.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeEncodingFailed, CodeDecodingFailed, CodeOverflow:
		return SeverityHigh
	case CodeParseFailed, CodeConversionFailed, CodeDivisionByZero:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
