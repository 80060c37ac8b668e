// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points; each delegates to a method.
//   - No logic duplication: validation lives in the methods and validators.

package matrix

import "github.com/katalvlaran/trimat/vector"

// NewFilled returns an order-n matrix with every stored entry set to val.
// Complexity: O(n²).
func NewFilled[T vector.Number](n int, val T, opts ...Option) (*Triangular[T], error) {
	m, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	m.Fill(val)

	return m, nil
}

// CloneMatrix returns a deep copy of m. Thin wrapper over Clone.
func CloneMatrix[T vector.Number](m *Triangular[T]) *Triangular[T] { return m.Clone() }

// Sum is an alias for a.Add(b).
func Sum[T vector.Number](a, b *Triangular[T]) (*Triangular[T], error) {
	if a == nil {
		return nil, matrixErrorf("Sum", ErrNilMatrix)
	}

	return a.Add(b)
}

// Diff is an alias for a.Sub(b).
func Diff[T vector.Number](a, b *Triangular[T]) (*Triangular[T], error) {
	if a == nil {
		return nil, matrixErrorf("Diff", ErrNilMatrix)
	}

	return a.Sub(b)
}
