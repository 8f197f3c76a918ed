// File: codes.go
// Title: Error Code Definitions
// Description: Defines the structured error codes used across the utilities
//              toolkit. Codes categorize failures of the fallible helper
//              operations (parsing, validation, serialization) so callers
//              can branch on the kind of failure rather than on message text.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation with toolkit error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the utilities toolkit
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// Parsing and conversion
	CodeParseFailed      Code = "PARSE_FAILED"
	CodeConversionFailed Code = "CONVERSION_FAILED"
	CodeEncodingFailed   Code = "ENCODING_FAILED"
	CodeDecodingFailed   Code = "DECODING_FAILED"

	// Arithmetic
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	CodeOverflow       Code = "OVERFLOW"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
		CodeParseFailed, CodeConversionFailed, CodeEncodingFailed, CodeDecodingFailed,
		CodeDivisionByZero, CodeOverflow:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	case CodeParseFailed, CodeConversionFailed, CodeEncodingFailed, CodeDecodingFailed:
		return "conversion"
	case CodeDivisionByZero, CodeOverflow:
		return "arithmetic"
	default:
		return "generic"
	}
}
