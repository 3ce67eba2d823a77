// SPDX-License-Identifier: MIT
// Package matrix - converters to and from gonum.
//
// ToGonum exports a Matrix into a *mat.Dense for routines this package does
// not provide (decompositions, solvers). FromGonum imports any square
// mat.Matrix back. Values pass through float64 in both directions.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new n×n *mat.Dense.
//
// Errors:
//   - ErrInvalidArgument for a nil matrix.
//   - ErrInvalidSize for a 0×0 matrix (gonum does not allow empty Dense).
//
// Complexity: O(n²).
func ToGonum[T vector.Number](m *Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	n := m.Size()
	if n == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidSize)
	}
	data := make([]float64, 0, n*n)
	for _, r := range m.rows {
		for j := 0; j < n; j++ {
			data = append(data, float64(r.Get(j)))
		}
	}

	return mat.NewDense(n, n, data), nil
}

// FromGonum copies a square gonum matrix into a new Matrix[T].
// Conversion to an integer T truncates toward zero like a Go conversion;
// out-of-range values follow Go's float-to-integer rules.
//
// Errors:
//   - ErrInvalidArgument for a nil source.
//   - ErrSizeMismatch when src is not square.
//   - ErrInvalidSize when the dimension exceeds the bound.
func FromGonum[T vector.Number](src mat.Matrix, opts ...Option) (*Matrix[T], error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrInvalidArgument)
	}
	r, c := src.Dims()
	if r != c {
		return nil, fmt.Errorf("Matrix.%s: %dx%d: %w", opFromGonum, r, c, ErrSizeMismatch)
	}
	m, err := New[T](r, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		row := m.rows[i]
		for j := 0; j < c; j++ {
			row.Set(j, T(src.At(i, j)))
		}
	}

	return m, nil
}
