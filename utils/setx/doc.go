// File: doc.go
// Title: Package Documentation for setx
// Description: Package setx provides a generic hash set with the usual
//              membership and algebra operations.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

// Package setx provides a generic Set type over comparable elements.
//
// A Set is a thin adapter over a map with empty struct values.
// Mutating operations (Add, AddAll, Remove) work in place; algebra
// operations (Union, Intersect, Difference, SymmetricDifference)
// always return new sets and leave their operands untouched. Iteration
// order is unspecified, matching map semantics.
//
//	admins := setx.Of("ana", "ben")
//	online := setx.FromSlice(currentUsers)
//	onlineAdmins := admins.Intersect(online)
package setx
