// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Keep every shape/index guard in one place so constructors, accessors and
//     operators reject the same inputs with the same sentinels.
//   - Validators return plain sentinels; call sites add context.

package vector

// validateShape checks 0 <= size <= maxSize and startIndex >= 0.
// Size is checked first: an invalid size is reported even if the start index
// is also invalid.
// Complexity: O(1).
func validateShape(size, startIndex, maxSize int) error {
	if size < 0 || size > maxSize {
		return ErrInvalidSize
	}
	if startIndex < 0 {
		return ErrInvalidStartIndex
	}

	return nil
}

// validateIndex checks 0 <= i < size.
// Complexity: O(1).
func validateIndex(i, size int) error {
	if i < 0 || i >= size {
		return ErrIndexOutOfRange
	}

	return nil
}

// validatePair checks that both operands are non-nil and have equal length.
// Complexity: O(1).
func validatePair[T Number](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return ErrSizeMismatch
	}

	return nil
}
