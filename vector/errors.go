// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation
// returns one of these (possibly wrapped with method context) and tests
// check them via errors.Is. The matrix package aliases the same values.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for easy grepping. Sentinels
// are wrapped at the detection site with fmt.Errorf("...: %w", ErrX) so the
// caller sees which method failed and still matches with errors.Is.

var (
	// ErrInvalidSize is returned when a requested length is negative or
	// exceeds the configured maximum (construction time only).
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrOutOfRange indicates that a checked index is outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates a binary operation between containers of
	// different length (or dimension, for matrices).
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrInvalidArgument signals malformed input: a nil source buffer,
	// a nil operand, or a buffer shorter than the requested length.
	ErrInvalidArgument = errors.New("vector: invalid argument")
)

// Method tags used in error wrappers.
const (
	ctxNew      = "New"
	ctxFromSl   = "FromSlice"
	ctxAt       = "At"
	ctxSetAt    = "SetAt"
	ctxRef      = "Ref"
	ctxAdd      = "Add"
	ctxSub      = "Sub"
	ctxDot      = "Dot"
	ctxAssign   = "Assign"
	ctxMoveFrom = "MoveFrom"
	ctxSwap     = "Swap"
	ctxReadText = "ReadText"
)

// vectorErrorf wraps err with the method tag and the offending integer
// (an index or a length) for diagnostics.
func vectorErrorf(method string, n int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, n, err)
}

// opErrorf wraps err for binary operations, reporting both operand lengths.
func opErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Vector.%s: len %d vs %d: %w", method, a, b, err)
}
