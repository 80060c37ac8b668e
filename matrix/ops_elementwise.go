// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise arithmetic over the stored triangle, delegating each row to
//     the vector operators so the tight loops live in one place.
//   - Operands are never mutated; a failed operation returns no partial result.
//
// Determinism:
//   - Fixed row order 0..n-1; results inherit the receiver's max size.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/trimat/vector"
)

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
)

// rowwise builds out.rows[i] = f(m.rows[i], o.rows[i]).
// Internal helper shared by Add and Sub.
func (m *Triangular[T]) rowwise(method string, o *Triangular[T],
	f func(a, b *vector.Vector[T]) (*vector.Vector[T], error)) (*Triangular[T], error) {
	if err := validatePair(m, o); err != nil {
		return nil, fmt.Errorf("Triangular.%s(order %d, order %d): %w", method, m.Size(), o.Size(), err)
	}
	rows := make([]*vector.Vector[T], m.size)
	for i := range rows {
		r, err := f(m.rows[i], o.rows[i])
		if err != nil {
			return nil, fmt.Errorf("Triangular.%s row %d: %w", method, i, err)
		}
		rows[i] = r
	}

	return &Triangular[T]{size: m.size, maxSize: m.maxSize, rows: rows}, nil
}

// Add returns the element-wise sum m + o.
//
// Errors:
//   - ErrSizeMismatch if the orders differ; ErrNilMatrix on a nil operand.
//
// Complexity: O(n²).
func (m *Triangular[T]) Add(o *Triangular[T]) (*Triangular[T], error) {
	return m.rowwise(ctxAdd, o, (*vector.Vector[T]).Add)
}

// Sub returns the element-wise difference m - o.
// Errors are the same as for Add.
func (m *Triangular[T]) Sub(o *Triangular[T]) (*Triangular[T], error) {
	return m.rowwise(ctxSub, o, (*vector.Vector[T]).Sub)
}

// mapRows builds out.rows[i] = f(m.rows[i]).
func (m *Triangular[T]) mapRows(f func(r *vector.Vector[T]) *vector.Vector[T]) *Triangular[T] {
	rows := make([]*vector.Vector[T], m.size)
	for i, r := range m.rows {
		rows[i] = f(r)
	}

	return &Triangular[T]{size: m.size, maxSize: m.maxSize, rows: rows}
}

// AddScalar returns a new matrix with s added to every stored entry.
// Entries below the diagonal are not stored and stay implicit zeros.
func (m *Triangular[T]) AddScalar(s T) *Triangular[T] {
	return m.mapRows(func(r *vector.Vector[T]) *vector.Vector[T] { return r.AddScalar(s) })
}

// SubScalar returns a new matrix with s subtracted from every stored entry.
func (m *Triangular[T]) SubScalar(s T) *Triangular[T] {
	return m.mapRows(func(r *vector.Vector[T]) *vector.Vector[T] { return r.SubScalar(s) })
}

// MulScalar returns a new matrix with every stored entry multiplied by s.
func (m *Triangular[T]) MulScalar(s T) *Triangular[T] {
	return m.mapRows(func(r *vector.Vector[T]) *vector.Vector[T] { return r.MulScalar(s) })
}
