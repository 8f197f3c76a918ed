// File: doc.go
// Title: Package Documentation for errors
// Description: Package errors is the standard error handling API for all
//              toolkit modules.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial documentation

// Package errors provides standardized error constructors for all toolkit
// modules.
//
// Every fallible operation in the utils packages reports failures through
// this package, so callers see a uniform shape: a structured error with a
// module identifier, an operation name, a code, and key-value details.
//
// Typical usage inside a module:
//
//	func ParseInt(s string) (int64, error) {
//		n, err := strconv.ParseInt(s, 10, 64)
//		if err != nil {
//			return 0, errors.MathxParseError("parse_int", s, err)
//		}
//		return n, nil
//	}
//
// For one-off shapes, NewErrorBuilder provides a fluent builder over the
// same machinery.
package errors
