// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for order, row and operand checks.
//   - Return plain sentinels; call sites wrap with context.
//   - Column checks are left to the row vector (offset-relative At/SetAt).

package matrix

import "github.com/katalvlaran/trimat/vector"

// validateOrder checks 0 <= n <= maxSize.
// Complexity: O(1).
func validateOrder(n, maxSize int) error {
	if n < 0 || n > maxSize {
		return ErrInvalidSize
	}

	return nil
}

// validateRow checks 0 <= i < n.
// Complexity: O(1).
func validateRow(i, n int) error {
	if i < 0 || i >= n {
		return ErrIndexOutOfRange
	}

	return nil
}

// validatePair checks that both operands are non-nil and of equal order.
// Complexity: O(1).
func validatePair[T vector.Number](a, b *Triangular[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.size != b.size {
		return ErrSizeMismatch
	}

	return nil
}
