// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar (+, -, *) and elementwise (+, -) arithmetic plus the dot product.
//   - Every operation allocates a fresh result; operands are never mutated,
//     so r := a.Add(a) and a.Assign(r) are always safe.
//
// Determinism:
//   - Fixed loop order 0..n-1. Dot accumulates left to right from zero.

package vector

// mapScalar returns a new vector with out[i] = f(v[i]).
func (v *Vector[T]) mapScalar(f func(T) T) *Vector[T] {
	n := v.Len()
	out := &Vector[T]{data: alloc[T](n)}
	for i := 0; i < n; i++ {
		out.data[i] = f(v.data[i])
	}

	return out
}

// AddScalar returns v + x applied to every element.
func (v *Vector[T]) AddScalar(x T) *Vector[T] {
	return v.mapScalar(func(e T) T { return e + x })
}

// SubScalar returns v - x applied to every element.
func (v *Vector[T]) SubScalar(x T) *Vector[T] {
	return v.mapScalar(func(e T) T { return e - x })
}

// MulScalar returns v * x applied to every element.
// Complexity: O(n).
func (v *Vector[T]) MulScalar(x T) *Vector[T] {
	return v.mapScalar(func(e T) T { return e * x })
}

// addSub computes out = v + u (sub == false) or out = v - u (sub == true).
// MAIN DESCRIPTION:
//   - Shared kernel for Add/Sub: one validation, one allocation, one loop.
//
// Errors:
//   - ErrInvalidArgument (nil operand), ErrSizeMismatch (length differs).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector[T]) addSub(u *Vector[T], sub bool, opTag string) (*Vector[T], error) {
	if err := ValidateSameLen(v, u); err != nil {
		return nil, opErrorf(opTag, v.Len(), u.Len(), err)
	}
	n := len(v.data)
	out := &Vector[T]{data: alloc[T](n)}
	if sub {
		for i := 0; i < n; i++ {
			out.data[i] = v.data[i] - u.data[i]
		}
		return out, nil
	}
	for i := 0; i < n; i++ {
		out.data[i] = v.data[i] + u.data[i]
	}

	return out, nil
}

// Add returns the elementwise sum v + u.
// Errors: ErrInvalidArgument, ErrSizeMismatch.
func (v *Vector[T]) Add(u *Vector[T]) (*Vector[T], error) { return v.addSub(u, false, ctxAdd) }

// Sub returns the elementwise difference v - u.
// Errors: ErrInvalidArgument, ErrSizeMismatch.
func (v *Vector[T]) Sub(u *Vector[T]) (*Vector[T], error) { return v.addSub(u, true, ctxSub) }

// Dot returns Σ v[i]*u[i], accumulated left to right from the zero value.
// MAIN DESCRIPTION:
//   - Inner product of two equal-length vectors.
//
// Errors:
//   - ErrInvalidArgument (nil operand), ErrSizeMismatch (length differs).
//
// Notes:
//   - Integer overflow wraps as in Go arithmetic; no overflow detection.
//   - The empty dot product is zero.
func (v *Vector[T]) Dot(u *Vector[T]) (T, error) {
	var acc T
	if err := ValidateSameLen(v, u); err != nil {
		return acc, opErrorf(ctxDot, v.Len(), u.Len(), err)
	}
	for i := range v.data {
		acc += v.data[i] * u.data[i]
	}

	return acc, nil
}
