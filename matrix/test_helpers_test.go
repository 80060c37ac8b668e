// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures for construction, copy and arithmetic tests.
//   • Tests use a small configured max order so boundary orders stay cheap.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/trimat/matrix"
	"github.com/katalvlaran/trimat/vector"
)

// testMax is the max order configured in tests that probe the order boundary.
const testMax = 16

// mustTri allocates an order-n matrix or fails the test.
func mustTri[T vector.Number](tb testing.TB, n int, opts ...matrix.Option) *matrix.Triangular[T] {
	tb.Helper()
	m, err := matrix.New[T](n, opts...)
	if err != nil {
		tb.Fatalf("matrix.New(%d): %v", n, err)
	}

	return m
}

// filledTri returns an order-n matrix with every stored entry set to val.
func filledTri[T vector.Number](tb testing.TB, n int, val T) *matrix.Triangular[T] {
	tb.Helper()
	m, err := matrix.NewFilled(n, val)
	if err != nil {
		tb.Fatalf("matrix.NewFilled(%d): %v", n, err)
	}

	return m
}

// requireUpper asserts every stored entry of m equals want.
func requireUpper[T vector.Number](tb testing.TB, m *matrix.Triangular[T], want T) {
	tb.Helper()
	for i := 0; i < m.Size(); i++ {
		for j := i; j < m.Size(); j++ {
			got, err := m.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if got != want {
				tb.Fatalf("At(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}
