// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Shape, index and size-mismatch sentinels are the vector package's own values,
// so errors.Is matches regardless of which layer detected the problem.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trimat/vector"
)

var (
	// ErrInvalidSize is returned when the requested order is negative or exceeds
	// the configured maximum.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates a row outside [0, Size()) or a column outside
	// [row, Size()).
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates a binary operation between matrices of unequal order.
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmpty is returned when exporting an order-0 matrix to a representation
	// that cannot hold it (gonum panics on zero-length triangles).
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNotUpper is returned when importing a lower-triangular TriDense.
	ErrNotUpper = errors.New("matrix: triangle is not upper")
)

// matrixErrorf wraps err with a call-site tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with the method name and coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Triangular.%s(%d,%d): %w", method, row, col, err)
}
