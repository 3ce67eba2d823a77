// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Canonical operand checks for binary operations.
//  - Return plain sentinels (no wrapping) so call sites can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape.

package matrix

import "github.com/katalvlaran/dynmat/vector"

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T vector.Number](m *Matrix[T]) error {
	if m == nil {
		return ErrInvalidArgument
	}

	return nil
}

// ValidateSameSize – Composite: NotNil(a) → NotNil(b) → Size(a) == Size(b).
//
// Errors: ErrInvalidArgument, ErrSizeMismatch.
// Complexity: O(1).
func ValidateSameSize[T vector.Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Size() != b.Size() {
		return ErrSizeMismatch
	}

	return nil
}

// ValidateVecLen – Composite: NotNil(m) → NotNil(v) → Size(m) == Len(v).
// Use for MatVec-like operations.
func ValidateVecLen[T vector.Number](m *Matrix[T], v *vector.Vector[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if v == nil {
		return ErrInvalidArgument
	}
	if m.Size() != v.Len() {
		return ErrSizeMismatch
	}

	return nil
}
