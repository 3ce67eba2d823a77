// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The matrix package shares its error taxonomy with package vector: every
// sentinel below IS the vector sentinel, so errors.Is matches either name.
// Matrix operations that fail inside a row operation therefore surface the
// row's error unchanged.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

var (
	// ErrInvalidSize is returned when a requested dimension is negative or
	// exceeds the configured maximum.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrOutOfRange indicates that a row or column index is outside [0, Size()).
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrSizeMismatch indicates incompatible operand dimensions
	// (matrix vs. matrix, or matrix dimension vs. vector length).
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrInvalidArgument signals a nil operand.
	ErrInvalidArgument = vector.ErrInvalidArgument
)

// Operation tags used in error wrappers.
const (
	opNew       = "New"
	opAt        = "At"
	opSet       = "Set"
	opRef       = "Ref"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opAssign    = "Assign"
	opMoveFrom  = "MoveFrom"
	opSwap      = "Swap"
	opReadText  = "ReadText"
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// cellErrorf wraps err with the operation tag and cell coordinates.
func cellErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", tag, row, col, err)
}
