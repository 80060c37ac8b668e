// Package trimat provides two small generic numeric containers with strict
// bounds checking and value semantics.
//
// What is inside?
//
//	vector/     Vector[T]: a bounds-checked, resizable array with an optional
//	            start index; scalar and element-wise arithmetic, dot product.
//	matrix/     Triangular[T]: a square upper-triangular matrix whose row i is
//	            a Vector of length n-i starting at column i; element-wise
//	            arithmetic and gonum TriDense interop.
//	examples/   a runnable walk-through of copy independence.
//
// Every accessor and operator returns sentinel errors (ErrInvalidSize,
// ErrInvalidStartIndex, ErrIndexOutOfRange, ErrSizeMismatch) instead of
// panicking, and every failed operation leaves its operands unchanged.
//
// Quick example:
//
//	m, _ := matrix.New[int](3)
//	_ = m.Set(0, 2, 5)
//	c := m.Clone()      // deep copy
//	_ = c.Set(0, 2, 7)  // m still holds 5
//	sum, _ := m.Add(c)  // [0][2] == 12
package trimat
