// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix algebra over square matrices: scalar product, matrix×vector,
//     elementwise sum/difference and the matrix product.
//   - Delegate per-row work to package vector (MulScalar, Add, Sub, Dot) so
//     the two levels share one arithmetic kernel.
//
// Determinism & Aliasing:
//   - Fixed loop orders. Every operation writes into a freshly allocated
//     result, so a.Mul(a) and a.Assign(product) are safe.

package matrix

import (
	"github.com/katalvlaran/dynmat/vector"
)

// MulScalar returns a new matrix with every cell multiplied by x,
// computed row by row with vector.MulScalar.
// Complexity: O(n²).
func (m *Matrix[T]) MulScalar(x T) *Matrix[T] {
	n := m.Size()
	if n == 0 {
		return &Matrix[T]{}
	}
	rows := make([]*vector.Vector[T], n)
	for i, r := range m.rows {
		rows[i] = r.MulScalar(x)
	}

	return &Matrix[T]{rows: rows}
}

// MulVec computes y = m·v where y[i] = Row(i)·v.
// MAIN DESCRIPTION:
//   - Matrix-vector product via row dot products.
//
// Implementation:
//   - Stage 1: ValidateVecLen(m, v).
//   - Stage 2: allocate y of length n; y[i] = m.rows[i].Dot(v).
//
// Errors:
//   - ErrInvalidArgument (nil operand), ErrSizeMismatch (Size() != v.Len()).
//
// Complexity:
//   - Time O(n²), Space O(n).
func (m *Matrix[T]) MulVec(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateVecLen(m, v); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y, err := vector.New[T](m.Size())
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	for i, r := range m.rows {
		d, err := r.Dot(v)
		if err != nil {
			return nil, matrixErrorf(opMulVec, err)
		}
		y.Set(i, d)
	}

	return y, nil
}

// addSub computes out = m + o (sub == false) or m - o (sub == true) row-wise.
// Internal helper for Add/Sub to share validation and allocation.
//
// Errors:
//   - ErrInvalidArgument (nil operand), ErrSizeMismatch (dimension differs).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) addSub(o *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	if err := ValidateSameSize(m, o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	n := m.Size()
	if n == 0 {
		return &Matrix[T]{}, nil
	}
	rows := make([]*vector.Vector[T], n)
	var err error
	for i, r := range m.rows {
		if sub {
			rows[i], err = r.Sub(o.rows[i])
		} else {
			rows[i], err = r.Add(o.rows[i])
		}
		if err != nil {
			return nil, matrixErrorf(opTag, err)
		}
	}

	return &Matrix[T]{rows: rows}, nil
}

// Add returns the elementwise sum m + o.
// Errors: ErrInvalidArgument, ErrSizeMismatch.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) { return m.addSub(o, false, opAdd) }

// Sub returns the elementwise difference m − o.
// Errors: ErrInvalidArgument, ErrSizeMismatch.
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) { return m.addSub(o, true, opSub) }

// Mul performs the matrix product C = m × o.
// MAIN DESCRIPTION:
//   - C[i][j] = Σ_k m[i][k]·o[k][j], accumulated into a zero result.
//
// Implementation:
//   - Stage 1: ValidateSameSize(m, o); allocate zero C.
//   - Stage 2: i→k→j loops over row storage; each C[i][j] still receives
//     its terms in ascending k.
//
// Errors:
//   - ErrInvalidArgument (nil operand), ErrSizeMismatch (dimension differs).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - The result never aliases an operand; m.Assign(m.Mul(m)) is safe.
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameSize(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := m.Size()
	res, err := New[T](n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		a          T
		ri, rk, ci *vector.Vector[T]
	)
	for i = 0; i < n; i++ {
		ri = m.rows[i]   // left row i
		ci = res.rows[i] // result row i
		for k = 0; k < n; k++ {
			a = ri.Get(k)
			rk = o.rows[k]
			for j = 0; j < n; j++ {
				*ci.Ptr(j) += a * rk.Get(j)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(n²).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	n := m.Size()
	res, _ := New[T](n) // n already satisfied the bound when m was built
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.rows[j].Set(i, m.rows[i].Get(j))
		}
	}

	return res
}
