// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar and element-wise arithmetic returning fresh vectors.
//   - Operands are never mutated; a failed operation returns no partial result.
//
// Determinism:
//   - Fixed 0..n-1 loop order; results inherit the receiver's start index and
//     max size.

package vector

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
	ctxDot = "Dot"
)

// mapScalar returns out[i] = f(v[i], s).
func (v *Vector[T]) mapScalar(s T, f func(a, b T) T) *Vector[T] {
	out := &Vector[T]{data: make([]T, len(v.data)), start: v.start, maxSize: v.maxSize}
	for i, x := range v.data {
		out.data[i] = f(x, s)
	}

	return out
}

// AddScalar returns a new vector with s added to every element.
// Complexity: O(n).
func (v *Vector[T]) AddScalar(s T) *Vector[T] {
	return v.mapScalar(s, func(a, b T) T { return a + b })
}

// SubScalar returns a new vector with s subtracted from every element.
// Complexity: O(n).
func (v *Vector[T]) SubScalar(s T) *Vector[T] {
	return v.mapScalar(s, func(a, b T) T { return a - b })
}

// MulScalar returns a new vector with every element multiplied by s.
// Complexity: O(n).
func (v *Vector[T]) MulScalar(s T) *Vector[T] {
	return v.mapScalar(s, func(a, b T) T { return a * b })
}

// addSub computes out = v + sign*o for sign in {+1, -1}.
// Internal helper shared by Add and Sub.
func (v *Vector[T]) addSub(method string, o *Vector[T], sub bool) (*Vector[T], error) {
	if err := validatePair(v, o); err != nil {
		return nil, opErrorf(method, v.Len(), o.Len(), err)
	}
	out := &Vector[T]{data: make([]T, len(v.data)), start: v.start, maxSize: v.maxSize}
	if sub {
		for i := range v.data {
			out.data[i] = v.data[i] - o.data[i]
		}
	} else {
		for i := range v.data {
			out.data[i] = v.data[i] + o.data[i]
		}
	}

	return out, nil
}

// Add returns the element-wise sum v + o.
//
// Errors:
//   - ErrSizeMismatch if the lengths differ; ErrNilVector on a nil operand.
//
// Complexity: O(n).
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	return v.addSub(ctxAdd, o, false)
}

// Sub returns the element-wise difference v - o.
// Errors are the same as for Add.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	return v.addSub(ctxSub, o, true)
}

// Dot returns the inner product sum(v[i] * o[i]).
// The dot product of two empty vectors is zero.
//
// Errors:
//   - ErrSizeMismatch if the lengths differ; ErrNilVector on a nil operand.
//
// Complexity: O(n).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var sum T
	if err := validatePair(v, o); err != nil {
		return sum, opErrorf(ctxDot, v.Len(), o.Len(), err)
	}
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}
