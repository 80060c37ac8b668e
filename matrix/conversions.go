// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Interop with gonum: export to and import from an upper *mat.TriDense.
//   - Values cross the boundary as float64; importing into an integer T
//     truncates toward zero like any Go float-to-integer conversion.

package matrix

import (
	"github.com/katalvlaran/trimat/vector"
	"gonum.org/v1/gonum/mat"
)

const (
	ctxToTriDense   = "ToTriDense"
	ctxFromTriDense = "FromTriDense"
)

// ToTriDense copies m into a new upper-triangular gonum matrix.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrEmpty if m has order 0 (gonum does not allow zero-length triangles).
//
// Complexity: O(n²).
func ToTriDense[T vector.Number](m *Triangular[T]) (*mat.TriDense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxToTriDense, ErrNilMatrix)
	}
	if m.size == 0 {
		return nil, matrixErrorf(ctxToTriDense, ErrEmpty)
	}

	t := mat.NewTriDense(m.size, mat.Upper, nil)
	for i, r := range m.rows {
		for j := i; j < m.size; j++ {
			x, _ := r.At(j) // j in [i, size) is always in range
			t.SetTri(i, j, float64(x))
		}
	}

	return t, nil
}

// FromTriDense copies the upper triangle of t into a new Triangular[T].
// An empty t yields an order-0 matrix. opts are applied as in New.
//
// Errors:
//   - ErrNilMatrix if t is nil.
//   - ErrNotUpper if t is lower-triangular.
//   - ErrInvalidSize if t's order exceeds the configured maximum.
//
// Complexity: O(n²).
func FromTriDense[T vector.Number](t *mat.TriDense, opts ...Option) (*Triangular[T], error) {
	if t == nil {
		return nil, matrixErrorf(ctxFromTriDense, ErrNilMatrix)
	}
	if t.IsEmpty() {
		return New[T](0, opts...)
	}
	n, kind := t.Triangle()
	if kind != mat.Upper {
		return nil, matrixErrorf(ctxFromTriDense, ErrNotUpper)
	}

	m, err := New[T](n, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromTriDense, err)
	}
	for i, r := range m.rows {
		for j := i; j < n; j++ {
			_ = r.SetAt(j, T(t.At(i, j))) // j in [i, n) is always in range
		}
	}

	return m, nil
}
