// SPDX-License-Identifier: MIT

// Package vector - owned storage, lifecycle & accessors.
//
// Purpose:
//   - Provide a single-owner dense buffer with an explicit length.
//   - Copy deep-clones, move transfers ownership and leaves the source empty.
//   - Checked accessors (At/SetAt/Ref) return errors; unchecked accessors
//     (Get/Set/Ptr) index the buffer directly.
//
// Complexity quicksheet:
//   - New/NewFilled/FromSlice/Clone/Assign: O(n); Move/MoveFrom/Swap: O(1);
//     Get/Set/At/SetAt: O(1).

package vector

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint: any integer or floating-point type.
// The additive identity used by Dot is the zero value of T.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is a dense, fixed-length run of T values.
//   - data is nil exactly when the length is zero.
//   - data is never shared with another live Vector.
type Vector[T Number] struct {
	data []T // exclusively owned storage, len(data) == Len()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// New creates a zero-filled vector of length n.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation.
//
// Implementation:
//   - Stage 1: resolve options and validate 0 ≤ n ≤ bound.
//   - Stage 2: allocate storage (nil for n == 0).
//
// Errors:
//   - ErrInvalidSize when n is negative or above the bound.
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Number](n int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if n < 0 || n > o.maxLen {
		return nil, vectorErrorf(ctxNew, n, ErrInvalidSize)
	}

	return &Vector[T]{data: alloc[T](n)}, nil
}

// NewFilled creates a vector of length n with every slot set to fill.
// Errors are the same as New.
func NewFilled[T Number](n int, fill T, opts ...Option) (*Vector[T], error) {
	v, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = fill
	}

	return v, nil
}

// FromSlice copies the first n elements of buf into a new vector.
// MAIN DESCRIPTION:
//   - Build an independent vector from a caller-owned buffer.
//
// Implementation:
//   - Stage 1: reject a nil buffer or n > len(buf) (ErrInvalidArgument).
//   - Stage 2: validate n against the bound (ErrInvalidSize).
//   - Stage 3: copy buf[:n]; later writes to buf do not affect the vector.
//
// Notes:
//   - An empty non-nil buffer with n == 0 is legal and yields an empty vector.
func FromSlice[T Number](buf []T, n int, opts ...Option) (*Vector[T], error) {
	if buf == nil {
		return nil, vectorErrorf(ctxFromSl, n, ErrInvalidArgument)
	}
	if n > len(buf) {
		return nil, fmt.Errorf("Vector.%s: n=%d exceeds buffer len %d: %w", ctxFromSl, n, len(buf), ErrInvalidArgument)
	}
	v, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	copy(v.data, buf[:n])

	return v, nil
}

// alloc returns owned storage for n elements, nil when n is zero.
func alloc[T Number](n int) []T {
	if n == 0 {
		return nil
	}

	return make([]T, n)
}

// Len returns the current length. A nil receiver has length zero.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Values returns a copy of the elements. The result never aliases storage.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.Len())
	if v != nil {
		copy(out, v.data)
	}

	return out
}

// Clone returns a deep copy with independent storage.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return &Vector[T]{}
	}
	cp := alloc[T](len(v.data))
	copy(cp, v.data)

	return &Vector[T]{data: cp}
}

// Assign replaces the receiver's contents with a deep copy of src.
// The receiver takes src's length. Assigning a vector to itself is a no-op.
//
// Errors:
//   - ErrInvalidArgument when src is nil.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(ctxAssign, 0, ErrInvalidArgument)
	}
	if v == src {
		return nil
	}
	cp := alloc[T](len(src.data))
	copy(cp, src.data)
	v.data = cp

	return nil
}

// Move transfers the receiver's storage into a new vector and leaves the
// receiver empty (length zero, no storage). No elements are copied.
// A nil receiver yields an empty vector.
func (v *Vector[T]) Move() *Vector[T] {
	if v == nil {
		return &Vector[T]{}
	}
	out := &Vector[T]{data: v.data}
	v.data = nil

	return out
}

// MoveFrom takes ownership of src's storage; the previous storage of the
// receiver is released and src is left empty. Moving a vector into itself
// leaves it unchanged.
//
// Errors:
//   - ErrInvalidArgument when src is nil.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(ctxMoveFrom, 0, ErrInvalidArgument)
	}
	if v == src {
		return nil
	}
	v.data, src.data = src.data, nil

	return nil
}

// Swap exchanges storage (and therefore length) with u in O(1).
//
// Errors:
//   - ErrInvalidArgument when either side is nil.
func (v *Vector[T]) Swap(u *Vector[T]) error {
	if v == nil || u == nil {
		return vectorErrorf(ctxSwap, u.Len(), ErrInvalidArgument)
	}
	v.data, u.data = u.data, v.data

	return nil
}

// Get returns element i without validation.
// Out-of-range i is a programmer error and panics like a slice index.
func (v *Vector[T]) Get(i int) T { return v.data[i] }

// Set stores x at i without validation.
func (v *Vector[T]) Set(i int, x T) { v.data[i] = x }

// Ptr returns a pointer to element i without validation, for in-place
// updates such as *v.Ptr(i) += x.
func (v *Vector[T]) Ptr(i int) *T { return &v.data[i] }

// checkIndex validates 0 ≤ i < Len().
func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= len(v.data) {
		return ErrOutOfRange
	}

	return nil
}

// At returns element i or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read.
//
// Errors:
//   - ErrOutOfRange when i < 0 or i ≥ Len().
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, vectorErrorf(ctxAt, i, err)
	}

	return v.data[i], nil
}

// SetAt stores x at i or returns ErrOutOfRange.
func (v *Vector[T]) SetAt(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return vectorErrorf(ctxSetAt, i, err)
	}
	v.data[i] = x

	return nil
}

// Ref returns a mutable reference to element i or ErrOutOfRange.
// The pointer stays valid until the storage is moved, swapped or reassigned.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, vectorErrorf(ctxRef, i, err)
	}

	return &v.data[i], nil
}

// Equal reports whether u has the same length and equal elements.
// Two nil vectors and a nil vs. an empty vector compare equal.
func (v *Vector[T]) Equal(u *Vector[T]) bool {
	if v.Len() != u.Len() {
		return false
	}
	if v == u || v.Len() == 0 {
		return true
	}
	for i := range v.data {
		if v.data[i] != u.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is !Equal.
func (v *Vector[T]) NotEqual(u *Vector[T]) bool { return !v.Equal(u) }
