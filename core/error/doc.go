// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type shared by
//              all toolkit packages.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial documentation

// Package error provides the structured error type used across the
// utilities toolkit.
//
// An *Error carries a message, a Code for programmatic inspection, a
// Severity, arbitrary key-value details, an optional wrapped cause, and
// a captured stack trace. It implements the standard error interface and
// supports errors.Unwrap, so it composes with the rest of the Go
// ecosystem.
//
// Errors are built fluently:
//
//	err := error.New("parse failed").
//		WithCode(error.CodeParseFailed).
//		WithOperation("parse_int").
//		WithDetail("input", "12x4")
//
// Most callers should not use this package directly; the errors package
// one level up provides standardized per-module constructors.
package error
