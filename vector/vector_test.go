// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for Vector construction,
// lifecycle and element access.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

// TestNewLen verifies that a fresh vector reports the requested length.
func TestNewLen(t *testing.T) {
	for _, n := range []int{0, 1, 4, 7, 1000} {
		v, err := vector.New[int](n)
		require.NoError(t, err)
		require.Equal(t, n, v.Len())
	}
}

// TestNewZeroLengthHasNoStorage ensures empty vectors behave like empty storage.
func TestNewZeroLengthHasNoStorage(t *testing.T) {
	v, err := vector.New[float64](0)
	require.NoError(t, err)
	require.Equal(t, 0, v.Len())
	require.Empty(t, v.Values())
	require.Equal(t, "", v.String())
}

// TestNewInvalidSize rejects lengths above the bound and negative lengths.
func TestNewInvalidSize(t *testing.T) {
	_, err := vector.New[int](vector.MaxLen + 1)
	require.ErrorIs(t, err, vector.ErrInvalidSize)

	_, err = vector.New[int](-7)
	require.ErrorIs(t, err, vector.ErrInvalidSize)

	_, err = vector.NewFilled(vector.MaxLen+1, 3)
	require.ErrorIs(t, err, vector.ErrInvalidSize)
}

// TestNewWithMaxLen checks that a lowered bound is enforced per call.
func TestNewWithMaxLen(t *testing.T) {
	_, err := vector.New[int](4, vector.WithMaxLen(4))
	require.NoError(t, err)

	_, err = vector.New[int](5, vector.WithMaxLen(4))
	require.ErrorIs(t, err, vector.ErrInvalidSize)
}

// TestNewFilled checks every slot holds the fill value.
func TestNewFilled(t *testing.T) {
	v := MustFilled(t, 7, 10)
	for i := 0; i < 7; i++ {
		require.Equal(t, 10, v.Get(i))
	}
}

// TestFromSlice copies the buffer and does not alias it.
func TestFromSlice(t *testing.T) {
	buf := []int{1, 2, 3, 4}
	v, err := vector.FromSlice(buf, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, v.Values())

	buf[0] = 100
	require.Equal(t, 1, v.Get(0))
}

// TestFromSliceInvalidArgument rejects a nil buffer and a short buffer.
func TestFromSliceInvalidArgument(t *testing.T) {
	_, err := vector.FromSlice[int](nil, 3)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)

	_, err = vector.FromSlice([]int{1, 2}, 3)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)

	_, err = vector.FromSlice([]int{1, 2}, 2, vector.WithMaxLen(1))
	require.ErrorIs(t, err, vector.ErrInvalidSize)

	v, err := vector.FromSlice([]int{}, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v.Len())
}

// TestCloneIndependence ensures Clone returns equal content with its own storage.
func TestCloneIndependence(t *testing.T) {
	a := MustFrom(t, 1, 0, 0, 0, 5)
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Set(0, 42)
	require.Equal(t, 1, a.Get(0))
	require.False(t, a.Equal(b))
}

// TestAssign covers copy-assignment across sizes and to itself.
func TestAssign(t *testing.T) {
	a := MustFrom(t, 1, 0, 0, 0, 5, 0, 0, 0, 0, 100)
	b := MustFilled(t, 13, 7)

	require.NoError(t, b.Assign(a))
	require.Equal(t, a.Len(), b.Len())
	require.True(t, a.Equal(b))

	b.Set(4, -1)
	require.Equal(t, 5, a.Get(4)) // storage is independent

	v := MustFilled(t, 7, 1)
	require.NoError(t, v.Assign(v))
	require.True(t, v.Equal(MustFilled(t, 7, 1)))

	require.ErrorIs(t, v.Assign(nil), vector.ErrInvalidArgument)
}

// TestMove checks that moving transfers content and empties the source.
func TestMove(t *testing.T) {
	a := MustFrom(t, 3, 1, 4, 1, 5)
	want := a.Values()

	b := a.Move()
	require.Equal(t, want, b.Values())
	require.Equal(t, 0, a.Len())
	require.Empty(t, a.Values())
}

// TestMoveFrom checks move-assignment, self-move and nil source.
func TestMoveFrom(t *testing.T) {
	a := MustFrom(t, 9, 8, 7)
	b := MustFilled(t, 5, 0)

	require.NoError(t, b.MoveFrom(a))
	require.Equal(t, []int{9, 8, 7}, b.Values())
	require.Equal(t, 0, a.Len())

	require.NoError(t, b.MoveFrom(b))
	require.Equal(t, []int{9, 8, 7}, b.Values())

	require.ErrorIs(t, b.MoveFrom(nil), vector.ErrInvalidArgument)
}

// TestSwap exchanges length and contents.
func TestSwap(t *testing.T) {
	a := MustFrom(t, 1, 2)
	b := MustFrom(t, 3, 4, 5)

	require.NoError(t, a.Swap(b))
	require.Equal(t, []int{3, 4, 5}, a.Values())
	require.Equal(t, []int{1, 2}, b.Values())
}

// TestNilSwapMove ensures nil operands are reported, not dereferenced.
func TestNilSwapMove(t *testing.T) {
	a := MustFrom(t, 1, 2)
	var nilVec *vector.Vector[int]

	require.ErrorIs(t, a.Swap(nil), vector.ErrInvalidArgument)
	require.ErrorIs(t, nilVec.Swap(a), vector.ErrInvalidArgument)
	require.Equal(t, []int{1, 2}, a.Values())

	moved := nilVec.Move()
	require.NotNil(t, moved)
	require.Equal(t, 0, moved.Len())
}

// TestSetGet validates unchecked writes and reads, including Ptr.
func TestSetGet(t *testing.T) {
	v, err := vector.New[int](7)
	require.NoError(t, err)

	v.Set(0, 4)
	require.Equal(t, 4, v.Get(0))

	*v.Ptr(1) += 3
	require.Equal(t, 3, v.Get(1))
}

// TestAtOutOfRange ensures checked access rejects i < 0 and i ≥ Len().
func TestAtOutOfRange(t *testing.T) {
	v := MustFilled(t, 7, 1)

	_, err := v.At(7)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	require.ErrorIs(t, v.SetAt(7, 0), vector.ErrOutOfRange)

	_, err = v.Ref(100)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestAtSetAtRef validates checked access on valid indices.
func TestAtSetAtRef(t *testing.T) {
	v := MustFilled(t, 3, 0.5)

	require.NoError(t, v.SetAt(2, 1.25))
	got, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 1.25, got)

	p, err := v.Ref(0)
	require.NoError(t, err)
	*p = 9
	require.Equal(t, 9.0, v.Get(0))
}

// TestEqual covers reflexivity, content and length sensitivity.
func TestEqual(t *testing.T) {
	a := MustFilled(t, 7, 10)
	require.True(t, a.Equal(a))
	require.True(t, a.Equal(MustFilled(t, 7, 10)))
	require.False(t, a.Equal(MustFilled(t, 8, 10)))
	require.True(t, a.NotEqual(MustFilled(t, 7, 11)))

	var nilVec *vector.Vector[int]
	empty := MustFrom[int](t)
	require.True(t, nilVec.Equal(empty))
	require.True(t, empty.Equal(nilVec))
	require.False(t, nilVec.Equal(a))
}
