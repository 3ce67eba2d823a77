// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Single source of truth for the operand checks shared by binary ops.
//  - Return plain sentinels (no wrapping) so call sites wrap uniformly.

package vector

// ValidateNotNil ensures the vector reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T Number](v *Vector[T]) error {
	if v == nil {
		return ErrInvalidArgument
	}

	return nil
}

// ValidateSameLen composes NotNil(a) → NotNil(b) → Len(a) == Len(b).
//
// Errors: ErrInvalidArgument for nil operands, ErrSizeMismatch otherwise.
// Complexity: O(1).
func ValidateSameLen[T Number](a, b *Vector[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if len(a.data) != len(b.data) {
		return ErrSizeMismatch
	}

	return nil
}
