// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix tests and benchmarks.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

// MustFilled allocates an n×n matrix filled with x or fails the test.
func MustFilled[T vector.Number](tb testing.TB, n int, x T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.NewFilled(n, x)
	require.NoError(tb, err)

	return m
}

// MustRows builds a matrix from literal rows (which must be square).
func MustRows[T vector.Number](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](len(rows))
	require.NoError(tb, err)
	for i, r := range rows {
		require.Len(tb, r, len(rows), "row %d is not square", i)
		for j, x := range r {
			require.NoError(tb, m.Set(i, j, x))
		}
	}

	return m
}

// MustVec builds a vector from literal values.
func MustVec[T vector.Number](tb testing.TB, vals ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.FromSlice(vals, len(vals))
	require.NoError(tb, err)

	return v
}

// MustAt reads (i,j) or fails the test.
func MustAt[T vector.Number](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	x, err := m.At(i, j)
	require.NoError(tb, err)

	return x
}

// fillRand fills m with values in [-span, span] from a fixed seed.
func fillRand(tb testing.TB, m *matrix.Matrix[int64], seed int64, span int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Row(i).Set(j, rng.Int63n(2*span+1)-span)
		}
	}
}
