// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the vector tests and benchmarks.
//   - Tests run with a small configured max size so the boundary sizes stay cheap.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/trimat/vector"
)

// testMax is the max size configured in tests that probe the size boundary.
const testMax = 64

// mustVector allocates a vector or fails the test.
func mustVector[T vector.Number](tb testing.TB, size int, opts ...vector.Option) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.New[T](size, opts...)
	if err != nil {
		tb.Fatalf("vector.New(%d): %v", size, err)
	}

	return v
}

// filled returns a vector of the given size with every element set to val.
func filled[T vector.Number](tb testing.TB, size int, val T) *vector.Vector[T] {
	tb.Helper()
	v := mustVector[T](tb, size)
	v.Fill(val)

	return v
}
