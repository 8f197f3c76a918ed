// File: benchmark_test.go
// Title: Benchmarks for Slice Utilities
// Description: Performance benchmarks for the most frequently used slice
//              operations, including the randomized sorting facility.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial benchmark implementation

package slicex

import (
	"math/rand"
	"testing"
)

func benchInput(n int) []int {
	rng := rand.New(rand.NewSource(1))
	slice := make([]int, n)
	for i := range slice {
		slice[i] = rng.Intn(n)
	}
	return slice
}

func BenchmarkFilter(b *testing.B) {
	input := benchInput(1000)
	even := func(n int) bool { return n%2 == 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Filter(input, even)
	}
}

func BenchmarkMap(b *testing.B) {
	input := benchInput(1000)
	double := func(n int) int { return n * 2 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Map(input, double)
	}
}

func BenchmarkUnique(b *testing.B) {
	input := benchInput(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Unique(input)
	}
}

func BenchmarkIntersect(b *testing.B) {
	a := benchInput(1000)
	c := benchInput(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Intersect(a, c)
	}
}

func BenchmarkGroupBy(b *testing.B) {
	input := benchInput(1000)
	mod := func(n int) int { return n % 10 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GroupBy(input, mod)
	}
}

func BenchmarkSort100(b *testing.B) {
	input := benchInput(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sort(input)
	}
}

func BenchmarkSort10000(b *testing.B) {
	input := benchInput(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sort(input)
	}
}

func BenchmarkSortAllEqual(b *testing.B) {
	input := Repeat(42, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sort(input)
	}
}

func BenchmarkSortPresorted(b *testing.B) {
	input := Range(0, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sort(input)
	}
}
