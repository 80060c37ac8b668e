// SPDX-License-Identifier: MIT

// Package matrix - triangular storage & safe accessors.
//
// Purpose:
//   - Compose the matrix from one vector per row, each one element shorter than
//     the previous, so the "no sub-diagonal storage" invariant is fixed at
//     construction.
//   - Guarantee safety at the public surface: accessors return errors instead
//     of panicking.
//   - Keep value semantics: Clone and Assign deep-copy every row.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; Row/At/Set: O(1); Clone/Assign/Equal: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/trimat/vector"
)

// ---------- error context tags ----------

const (
	ctxNew    = "matrix.New"
	ctxRow    = "Row"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Triangular.Assign"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Triangular[int])(nil)

// New creates a zero-filled upper-triangular matrix of order size.
// Stage 1 (Validate): 0 <= size <= max size.
// Stage 2 (Prepare): allocate row i with length size-i and start index i.
//
// Errors:
//   - ErrInvalidSize.
//
// Complexity: O(size²).
func New[T vector.Number](size int, opts ...Option) (*Triangular[T], error) {
	o := gatherOptions(opts...)
	if err := validateOrder(size, o.maxSize); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d)", ctxNew, size), err)
	}

	rows := make([]*vector.Vector[T], size)
	for i := range rows {
		r, err := vector.New[T](size-i, vector.WithStartIndex(i), vector.WithMaxSize(o.maxSize))
		if err != nil {
			return nil, matrixErrorf(fmt.Sprintf("%s(%d) row %d", ctxNew, size, i), err)
		}
		rows[i] = r
	}

	return &Triangular[T]{size: size, maxSize: o.maxSize, rows: rows}, nil
}

// Size returns the matrix order (number of rows and columns).
func (m *Triangular[T]) Size() int {
	if m == nil {
		return 0
	}

	return m.size
}

// MaxSize returns the order bound the matrix was built with.
func (m *Triangular[T]) MaxSize() int { return m.maxSize }

// Row returns a live view of row i.
// Returns ErrIndexOutOfRange unless 0 <= i < Size().
func (m *Triangular[T]) Row(i int) (Row[T], error) {
	if err := validateRow(i, m.size); err != nil {
		return Row[T]{}, cellErrorf(ctxRow, i, i, err)
	}

	return Row[T]{index: i, v: m.rows[i]}, nil
}

// At returns entry (i, j). Valid cells satisfy 0 <= i <= j < Size().
// Returns ErrIndexOutOfRange otherwise, including for j < i.
func (m *Triangular[T]) At(i, j int) (T, error) {
	if err := validateRow(i, m.size); err != nil {
		var zero T
		return zero, cellErrorf(ctxAt, i, j, err)
	}
	x, err := m.rows[i].At(j)
	if err != nil {
		return x, cellErrorf(ctxAt, i, j, err)
	}

	return x, nil
}

// Set writes val at entry (i, j). See At for the valid range.
func (m *Triangular[T]) Set(i, j int, val T) error {
	if err := validateRow(i, m.size); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}
	if err := m.rows[i].SetAt(j, val); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}

	return nil
}

// Fill sets every stored entry to val.
// Complexity: O(n²).
func (m *Triangular[T]) Fill(val T) {
	for _, r := range m.rows {
		r.Fill(val)
	}
}

// cloneRows deep-copies every row.
func (m *Triangular[T]) cloneRows() []*vector.Vector[T] {
	rows := make([]*vector.Vector[T], len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return rows
}

// Clone returns a deep copy; no row storage is shared with m.
// Complexity: O(n²).
func (m *Triangular[T]) Clone() *Triangular[T] {
	return &Triangular[T]{size: m.size, maxSize: m.maxSize, rows: m.cloneRows()}
}

// Assign replaces the order, max size and every row of m with copies of src's.
// src may have a different order. The replacement rows are built before m is
// touched, so m is unchanged if anything fails. Self-assignment is a no-op.
//
// Errors:
//   - ErrNilMatrix if m or src is nil.
//
// Complexity: O(n²).
func (m *Triangular[T]) Assign(src *Triangular[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	rows := src.cloneRows()
	m.size, m.maxSize, m.rows = src.size, src.maxSize, rows

	return nil
}

// Equal reports whether m and o have the same order and equal rows.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func (m *Triangular[T]) Equal(o *Triangular[T]) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || m.size != o.size {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// String renders the full square, with zeros below the diagonal:
//
//	[1, 2, 3]
//	[0, 4, 5]
//	[0, 0, 6]
//
// Complexity: O(n²).
func (m *Triangular[T]) String() string {
	var sb strings.Builder
	var zero T
	for i, r := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.size; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			if j < i {
				fmt.Fprintf(&sb, "%v", zero)
				continue
			}
			x, _ := r.At(j) // j in [i, size) is always in range
			fmt.Fprintf(&sb, "%v", x)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// ---------- Row view ----------

// Index returns the row number; it is also the first valid column.
func (r Row[T]) Index() int { return r.index }

// Len returns the number of stored entries in the row (Size()-Index()).
func (r Row[T]) Len() int { return r.v.Len() }

// Get returns the entry at zero-based position k, i.e. column Index()+k.
// Returns ErrIndexOutOfRange unless 0 <= k < Len().
func (r Row[T]) Get(k int) (T, error) { return r.v.Get(k) }

// Set writes val at zero-based position k.
func (r Row[T]) Set(k int, val T) error { return r.v.Set(k, val) }

// At returns the entry in column j. Returns ErrIndexOutOfRange for j < Index().
func (r Row[T]) At(j int) (T, error) { return r.v.At(j) }

// SetAt writes val in column j.
func (r Row[T]) SetAt(j int, val T) error { return r.v.SetAt(j, val) }

// Vector returns a detached copy of the row.
func (r Row[T]) Vector() *vector.Vector[T] { return r.v.Clone() }
