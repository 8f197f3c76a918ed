// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides generic map inspection,
//              transformation, and merging helpers.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

// Package mapx provides generic helpers for working with maps.
//
// All functions treat their inputs as read-only and return new maps or
// slices. Nil maps are handled gracefully: inspection helpers return
// nil or zero values, and Merge skips nil operands.
//
// SortedKeys bridges to the slicex sorting facility so callers get a
// deterministic key order without reaching for the sort package
// themselves:
//
//	for _, k := range mapx.SortedKeys(settings) {
//		fmt.Println(k, settings[k])
//	}
package mapx
