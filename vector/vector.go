// SPDX-License-Identifier: MIT

// Package vector - storage & safe accessors.
//
// Purpose:
//   - Own a contiguous []T whose length always equals the vector size.
//   - Guarantee safety at the public surface: accessors return errors instead
//     of panicking.
//   - Keep value semantics: Clone and Assign never share storage.
//
// Complexity quicksheet:
//   - New/FromSlice: O(n) zero-init or copy; Get/Set/At/SetAt: O(1);
//     Clone/Assign/Equal: O(n).

package vector

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- error context tags ----------

const (
	ctxGet   = "Get"
	ctxSet   = "Set"
	ctxAt    = "At"
	ctxSetAt = "SetAt"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Number is the set of element types a Vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is a bounds-checked one-dimensional array of T.
//   - data holds exactly Len() elements.
//   - start is the logical index of data[0] for At/SetAt.
//   - maxSize is the bound New enforced; Assign carries it over from the source.
type Vector[T Number] struct {
	data    []T
	start   int
	maxSize int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// New creates a zero-filled vector of the given size.
// Stage 1 (Validate): 0 <= size <= max size, start index >= 0.
// Stage 2 (Prepare): allocate the backing slice.
//
// Errors:
//   - ErrInvalidSize, ErrInvalidStartIndex.
//
// Complexity: O(size).
func New[T Number](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := validateShape(size, o.startIndex, o.maxSize); err != nil {
		return nil, fmt.Errorf("vector.New(%d, start %d): %w", size, o.startIndex, err)
	}

	return &Vector[T]{
		data:    make([]T, size),
		start:   o.startIndex,
		maxSize: o.maxSize,
	}, nil
}

// FromSlice creates a vector holding a copy of data.
// Errors and options are the same as for New with size = len(data).
// Complexity: O(len(data)).
func FromSlice[T Number](data []T, opts ...Option) (*Vector[T], error) {
	v, err := New[T](len(data), opts...)
	if err != nil {
		return nil, err
	}
	copy(v.data, data)

	return v, nil
}

// Len returns the number of stored elements. A nil vector has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// StartIndex returns the logical index of the first element.
func (v *Vector[T]) StartIndex() int { return v.start }

// MaxSize returns the size bound the vector was built with.
func (v *Vector[T]) MaxSize() int { return v.maxSize }

// Get returns the element at zero-based index i.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
func (v *Vector[T]) Get(i int) (T, error) {
	if err := validateIndex(i, len(v.data)); err != nil {
		var zero T
		return zero, vectorErrorf(ctxGet, i, err)
	}

	return v.data[i], nil
}

// Set writes val at zero-based index i. Nothing else changes.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
func (v *Vector[T]) Set(i int, val T) error {
	if err := validateIndex(i, len(v.data)); err != nil {
		return vectorErrorf(ctxSet, i, err)
	}
	v.data[i] = val

	return nil
}

// At returns the element at logical position pos, i.e. data[pos-StartIndex()].
// Returns ErrIndexOutOfRange when pos is outside
// [StartIndex(), StartIndex()+Len()).
func (v *Vector[T]) At(pos int) (T, error) {
	if err := validateIndex(pos-v.start, len(v.data)); err != nil {
		var zero T
		return zero, vectorErrorf(ctxAt, pos, err)
	}

	return v.data[pos-v.start], nil
}

// SetAt writes val at logical position pos. See At for the valid range.
func (v *Vector[T]) SetAt(pos int, val T) error {
	if err := validateIndex(pos-v.start, len(v.data)); err != nil {
		return vectorErrorf(ctxSetAt, pos, err)
	}
	v.data[pos-v.start] = val

	return nil
}

// Fill sets every element to val.
func (v *Vector[T]) Fill(val T) {
	for i := range v.data {
		v.data[i] = val
	}
}

// Slice returns a copy of the stored elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy with the same size, start index and contents.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{data: data, start: v.start, maxSize: v.maxSize}
}

// Assign replaces size, start index, max size and contents of v with those of
// src. The replacement storage is fully built before v is touched, so v is
// left unchanged if anything fails. Assigning a vector to itself is a no-op.
//
// Errors:
//   - ErrNilVector if v or src is nil.
//
// Complexity: O(n).
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == nil || src == nil {
		return fmt.Errorf("Vector.Assign: %w", ErrNilVector)
	}
	if v == src {
		return nil
	}
	c := src.Clone()
	*v = *c

	return nil
}

// Equal reports whether v and o have the same length and element-wise equal
// contents. The start index does not take part in equality.
// Two nil vectors are equal; a nil and a non-nil vector are not.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil || len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String formats the vector as "[a, b, c]".
// Complexity: O(n).
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
