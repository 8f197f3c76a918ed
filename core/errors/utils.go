// File: utils.go
// Title: Standard Error Creation Utilities
// Description: Implements the fluent ErrorBuilder and the standard error
//              constructor functions used by all utils packages. These are
//              the only error constructors module code should call; they
//              keep codes, severities, and detail keys consistent.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

package errors

import (
	"fmt"
	"strings"

	coreerror "github.com/icapri/utilities-sub001/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  coreerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: coreerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity coreerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *coreerror.Error {
	if eb.code == "" {
		eb.code = moduleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *coreerror.Error
	if eb.cause != nil {
		err = coreerror.Wrap(eb.cause, eb.message)
	} else {
		err = coreerror.New(eb.message)
	}

	return err.
		WithCode(coreerror.Code(eb.code)).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS FOR ALL TOOLKIT MODULES
// =============================================================================
// These functions provide a consistent interface for creating errors across
// all utils packages. Use these instead of fmt.Errorf() or errors.New().

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(coreerror.SeverityMedium).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s", module, operation).
		Code(moduleErrorCode(module, "format")).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(coreerror.SeverityMedium).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Severity(coreerror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *coreerror.Error {
	return NewErrorBuilder(module).
		Messagef("%s: validation failed for %s: %s", module, field, reason).
		Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(coreerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value out of range in %s.%s", module, operation).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(coreerror.SeverityMedium).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s", module, operation).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(coreerror.SeverityLow).
		Build()
}

// =============================================================================
// MODULE CONVENIENCE CONSTRUCTORS
// =============================================================================

// StringxValidationError creates a validation error for the stringx module
func StringxValidationError(operation string, value interface{}, expected string) *coreerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("stringx.%s: validation failed", operation).
		Detail("value", value).
		Detail("expected", expected).
		Severity(coreerror.SeverityLow).
		Build()
}

// StringxInvalidInput creates an invalid input error for the stringx module
func StringxInvalidInput(operation string, input interface{}) *coreerror.Error {
	return InvalidInput(ModuleStringx, operation, input, "valid input")
}

// MathxParseError creates a parse error for the mathx module
func MathxParseError(operation, input string, cause error) *coreerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Messagef("mathx.%s: cannot parse %q", operation, input).
		Cause(cause).
		Code(CodeMathxParseError).
		Detail("input", input).
		Build()
}

// TimexParseError creates a parse error for the timex module
func TimexParseError(operation, input string, cause error) *coreerror.Error {
	return NewErrorBuilder(ModuleTimex).
		Operation(operation).
		Messagef("timex.%s: cannot parse %q", operation, input).
		Cause(cause).
		Code(CodeTimexParseError).
		Detail("input", input).
		Build()
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if toolErr, ok := err.(*coreerror.Error); ok {
		if module, ok := toolErr.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// IsModuleError checks whether an error originated in the given module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}
