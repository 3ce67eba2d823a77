// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Intention-revealing constructors (Identity) and package-level aliases
//     over the methods, for call sites that read better as functions.
//
// Determinism & Policy:
//   - Aliases have exactly the semantics and errors of the methods they wrap.

package matrix

import "github.com/katalvlaran/dynmat/vector"

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidSize (same bound as New).
func Identity[T vector.Number](n int, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i].Set(i, 1)
	}

	return m, nil
}

// Sum is an alias for a.Add(b): element-wise a + b.
func Sum[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Add(b) }

// Diff is an alias for a.Sub(b): element-wise a − b.
func Diff[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Sub(b) }

// Product is an alias for a.Mul(b): matrix product a × b.
func Product[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Mul(b) }

// MatVecMul is an alias for m.MulVec(x): y = m·x.
func MatVecMul[T vector.Number](m *Matrix[T], x *vector.Vector[T]) (*vector.Vector[T], error) {
	return m.MulVec(x)
}

// ScaleBy is an alias for m.MulScalar(alpha).
func ScaleBy[T vector.Number](m *Matrix[T], alpha T) *Matrix[T] { return m.MulScalar(alpha) }

// T is an alias for m.Transpose().
func T[E vector.Number](m *Matrix[E]) *Matrix[E] { return m.Transpose() }
