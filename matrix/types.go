// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the container types; construction and methods live
// in impl_triangular.go and ops_elementwise.go.
package matrix

import "github.com/katalvlaran/trimat/vector"

// Triangular is a square upper-triangular matrix of order size.
//   - rows[i] has length size-i and start index i.
//   - Entry (i,j), j >= i, is rows[i] at logical position j.
//   - Entries with j < i are not stored.
//
// Complexity notes: O(size²/2) memory; cell access O(1).
type Triangular[T vector.Number] struct {
	size    int
	maxSize int
	rows    []*vector.Vector[T]
}

// Row is a live view of one matrix row. Writes through it are visible in the
// matrix. It exposes element access only, so the row length can never drift
// from size-i.
type Row[T vector.Number] struct {
	index int
	v     *vector.Vector[T]
}
