// File: standards.go
// Title: Error Standards for the Utilities Toolkit
// Description: Provides standardized error codes and module identifiers so
//              that every utils package reports failures in the same shape.
//              Maps module operations onto the structured codes of the core
//              error package.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"
	"strings"

	coreerror "github.com/icapri/utilities-sub001/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleSlicex   = "slicex"
	ModuleComparex = "comparex"
	ModuleMathx    = "mathx"
	ModuleTimex    = "timex"
	ModuleMapx     = "mapx"
	ModuleSetx     = "setx"
	ModuleObjectx  = "objectx"
)

// Standardized error codes shared across modules
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// Module-specific error codes - stringx
	CodeStringxInvalidFormat  = "STRINGX_INVALID_FORMAT"
	CodeStringxLengthExceeded = "STRINGX_LENGTH_EXCEEDED"
	CodeStringxRandomFailed   = "STRINGX_RANDOM_FAILED"

	// Module-specific error codes - mathx
	CodeMathxParseError     = "MATHX_PARSE_ERROR"
	CodeMathxDivisionByZero = "MATHX_DIVISION_BY_ZERO"
	CodeMathxOutOfRange     = "MATHX_OUT_OF_RANGE"

	// Module-specific error codes - timex
	CodeTimexInvalidFormat = "TIMEX_INVALID_FORMAT"
	CodeTimexParseError    = "TIMEX_PARSE_ERROR"

	// Module-specific error codes - objectx
	CodeObjectxEncodeFailed = "OBJECTX_ENCODE_FAILED"
	CodeObjectxDecodeFailed = "OBJECTX_DECODE_FAILED"
	CodeObjectxCloneFailed  = "OBJECTX_CLONE_FAILED"

	// Module-specific error codes - mapx
	CodeMapxKeyNotFound = "MAPX_KEY_NOT_FOUND"
)

// StandardError creates a standardized error with module context
func StandardError(module, operation, message string) *coreerror.Error {
	return coreerror.New(message).
		WithCode(coreerror.Code(moduleErrorCode(module, operation))).
		WithOperation(operation).
		WithDetail("module", module).
		WithSeverity(coreerror.SeverityMedium)
}

// ModuleError wraps a cause with module context and details
func ModuleError(module, operation string, cause error, details map[string]interface{}) *coreerror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = module

	code := coreerror.Code(moduleErrorCode(module, operation))

	if cause != nil {
		return coreerror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
			WithCode(code).
			WithOperation(operation).
			WithDetails(details)
	}

	return coreerror.New(fmt.Sprintf("%s.%s failed", module, operation)).
		WithCode(code).
		WithOperation(operation).
		WithDetails(details)
}

// moduleErrorCode returns the appropriate error code for a module operation
func moduleErrorCode(module, operation string) string {
	switch module {
	case ModuleStringx:
		return stringxErrorCode(operation)
	case ModuleMathx:
		return mathxErrorCode(operation)
	case ModuleTimex:
		return timexErrorCode(operation)
	case ModuleObjectx:
		return objectxErrorCode(operation)
	case ModuleMapx:
		if strings.Contains(operation, "key") || strings.Contains(operation, "get") {
			return CodeMapxKeyNotFound
		}
		return CodeOperationFailed
	default:
		return CodeOperationFailed
	}
}

func stringxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "format"):
		return CodeStringxInvalidFormat
	case strings.Contains(operation, "length") || strings.Contains(operation, "truncate"):
		return CodeStringxLengthExceeded
	case strings.Contains(operation, "random"):
		return CodeStringxRandomFailed
	default:
		return CodeInvalidInput
	}
}

func mathxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "divide") || strings.Contains(operation, "div"):
		return CodeMathxDivisionByZero
	case strings.Contains(operation, "parse"):
		return CodeMathxParseError
	case strings.Contains(operation, "range") || strings.Contains(operation, "clamp"):
		return CodeMathxOutOfRange
	default:
		return CodeInvalidInput
	}
}

func timexErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "parse"):
		return CodeTimexParseError
	case strings.Contains(operation, "format"):
		return CodeTimexInvalidFormat
	default:
		return CodeInvalidInput
	}
}

func objectxErrorCode(operation string) string {
	// "unmarshal" contains "marshal", so the decode case must come first
	switch {
	case strings.Contains(operation, "unmarshal") || strings.Contains(operation, "decode"):
		return CodeObjectxDecodeFailed
	case strings.Contains(operation, "marshal") || strings.Contains(operation, "encode"):
		return CodeObjectxEncodeFailed
	case strings.Contains(operation, "clone"):
		return CodeObjectxCloneFailed
	default:
		return CodeOperationFailed
	}
}
