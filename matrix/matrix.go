// SPDX-License-Identifier: MIT

// Package matrix - square storage composed of vector rows & safe accessors.
//
// Purpose:
//   - Hold n rows, each an independently owned *vector.Vector[T] of length n.
//   - Reuse the vector ownership model at both levels: Clone and Assign copy
//     every row, Move/MoveFrom/Swap transfer the row set without copying.
//   - Guarantee safety at the checked surface: At/Set/Ref return errors;
//     Row(i) is the unchecked fast path.
//
// Complexity quicksheet:
//   - New/NewFilled/Clone/Assign: O(n²); Move/MoveFrom/Swap: O(1); At/Set: O(1).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// Matrix is a square n×n matrix stored row by row.
//   - len(rows) == n, and every row has Len() == n.
//   - rows is nil exactly when n == 0.
type Matrix[T vector.Number] struct {
	rows []*vector.Vector[T] // owned rows; never shared with another Matrix
}

var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates an n×n zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict dimension validation.
//
// Implementation:
//   - Stage 1: resolve options; validate 0 ≤ n ≤ bound.
//   - Stage 2: allocate n rows of length n, each independently.
//
// Errors:
//   - ErrInvalidSize when n is negative or above the bound.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T vector.Number](n int, opts ...Option) (*Matrix[T], error) {
	var zero T

	return NewFilled(n, zero, opts...)
}

// NewFilled creates an n×n matrix with every cell set to fill.
// Errors are the same as New.
func NewFilled[T vector.Number](n int, fill T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if n < 0 || n > o.maxDim {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", opNew, n, ErrInvalidSize)
	}
	if n == 0 {
		return &Matrix[T]{}, nil
	}
	rows := make([]*vector.Vector[T], n)
	for i := range rows {
		r, err := vector.NewFilled(n, fill)
		if err != nil {
			return nil, matrixErrorf(opNew, err)
		}
		rows[i] = r
	}

	return &Matrix[T]{rows: rows}, nil
}

// Size returns the dimension n. A nil receiver has dimension zero.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Row returns row i without validation. The returned vector is the matrix's
// own storage: writes through it are visible in the matrix. Callers must
// not change the row's length (Assign/MoveFrom/Swap with a different-length
// vector), which would break the square shape.
func (m *Matrix[T]) Row(i int) *vector.Vector[T] { return m.rows[i] }

// checkCell validates both coordinates. The column is checked against the
// row's own length, so a row resized through Row(i) still fails cleanly.
func (m *Matrix[T]) checkCell(row, col int) error {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.rows[row].Len() {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := m.checkCell(row, col); err != nil {
		var zero T
		return zero, cellErrorf(opAt, row, col, err)
	}

	return m.rows[row].Get(col), nil
}

// Set stores x at (row, col) or returns ErrOutOfRange.
func (m *Matrix[T]) Set(row, col int, x T) error {
	if err := m.checkCell(row, col); err != nil {
		return cellErrorf(opSet, row, col, err)
	}
	m.rows[row].Set(col, x)

	return nil
}

// Ref returns a mutable reference to cell (row, col) or ErrOutOfRange.
func (m *Matrix[T]) Ref(row, col int) (*T, error) {
	if err := m.checkCell(row, col); err != nil {
		return nil, cellErrorf(opRef, row, col, err)
	}

	return m.rows[row].Ptr(col), nil
}

// Clone returns a deep copy; every row gets fresh storage.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	n := m.Size()
	if n == 0 {
		return &Matrix[T]{}
	}
	rows := make([]*vector.Vector[T], n)
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix[T]{rows: rows}
}

// Assign replaces the receiver with a deep copy of src, taking its
// dimension. Self-assignment is a no-op.
//
// Errors:
//   - ErrInvalidArgument when src is nil.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(opAssign, ErrInvalidArgument)
	}
	if m == src {
		return nil
	}
	m.rows = src.Clone().rows

	return nil
}

// Move transfers the rows into a new matrix and leaves the receiver empty.
// A nil receiver yields an empty matrix.
func (m *Matrix[T]) Move() *Matrix[T] {
	if m == nil {
		return &Matrix[T]{}
	}
	out := &Matrix[T]{rows: m.rows}
	m.rows = nil

	return out
}

// MoveFrom takes ownership of src's rows and leaves src empty.
// Moving a matrix into itself leaves it unchanged.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(opMoveFrom, ErrInvalidArgument)
	}
	if m == src {
		return nil
	}
	m.rows, src.rows = src.rows, nil

	return nil
}

// Swap exchanges the row sets of m and o in O(1).
// Errors: ErrInvalidArgument when either side is nil.
func (m *Matrix[T]) Swap(o *Matrix[T]) error {
	if m == nil || o == nil {
		return matrixErrorf(opSwap, ErrInvalidArgument)
	}
	m.rows, o.rows = o.rows, m.rows

	return nil
}

// Equal reports whether o has the same dimension and every row is equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m.Size() != o.Size() {
		return false
	}
	if m == o || m.Size() == 0 {
		return true
	}
	for i, r := range m.rows {
		if !r.Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is !Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool { return !m.Equal(o) }
