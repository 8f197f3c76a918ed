// File: doc.go
// Title: Package Documentation for objectx
// Description: Package objectx provides nil inspection, structural
//              equality, deep cloning, and serialization codecs.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

// Package objectx provides helpers for working with arbitrary values.
//
// Overview
//
// The package covers three concerns:
//
//   - Nil awareness: IsNil sees through interfaces and reports typed
//     nils (a nil *T stored in an interface) that a plain == nil check
//     would miss.
//   - Structural equality: Equal and Diff compare values deeply and
//     produce readable difference reports for tests and diagnostics.
//   - Serialization: ToJSON/FromJSON, ToYAML/FromYAML, and
//     ToTOML/FromTOML round-trip values through the three common
//     configuration formats. Failures come back as structured errors
//     from the core/errors package.
//
// Usage Examples
//
//	if objectx.IsNil(handler) {
//		return fallback
//	}
//
//	if !objectx.Equal(want, got) {
//		t.Error(objectx.Diff(want, got))
//	}
//
//	data, err := objectx.ToYAML(settings)
package objectx
