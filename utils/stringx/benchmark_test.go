// File: benchmark_test.go
// Title: Benchmarks for String Utilities
// Description: Benchmarks for the scanning primitives and the most common
//              transforms.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial benchmarks

package stringx

import (
	"strings"
	"testing"
)

var benchHaystack = strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 50)

func BenchmarkIndexOf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IndexOf(benchHaystack, "adipiscing")
	}
}

func BenchmarkIndexOfAbsent(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IndexOf(benchHaystack, "zzzzzz")
	}
}

func BenchmarkLastIndexOf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		LastIndexOf(benchHaystack, "Lorem")
	}
}

func BenchmarkCountMatches(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CountMatches(benchHaystack, "or")
	}
}

func BenchmarkContainsIgnoreCase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ContainsIgnoreCase(benchHaystack, "ADIPISCING")
	}
}

func BenchmarkIndexOfDifference(b *testing.B) {
	a := benchHaystack
	c := benchHaystack[:len(benchHaystack)-1] + "X"
	for i := 0; i < b.N; i++ {
		IndexOfDifference(a, c)
	}
}

func BenchmarkTruncate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Truncate(benchHaystack, 80, "...")
	}
}

func BenchmarkToSnakeCase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ToSnakeCase("SomeLongVariableNameInPascalCase")
	}
}
