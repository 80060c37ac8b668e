// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All public operations return these sentinels (possibly wrapped with call-site
// context); callers match them with errors.Is. User input never causes a panic.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested size is negative or exceeds the
	// configured maximum.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrInvalidStartIndex is returned when a negative start index is requested.
	ErrInvalidStartIndex = errors.New("vector: invalid start index")

	// ErrIndexOutOfRange indicates an index outside [0, Len()) after offset resolution.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates a binary operation between vectors of unequal size.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)

// vectorErrorf wraps err with the method name and the offending index.
func vectorErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, idx, err)
}

// opErrorf wraps err with the method name and both operand sizes.
func opErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Vector.%s(len %d, len %d): %w", method, a, b, err)
}
