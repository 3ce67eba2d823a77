// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

// MustFilled allocates a vector of length n filled with x or fails the test.
func MustFilled[T vector.Number](tb testing.TB, n int, x T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.NewFilled(n, x)
	require.NoError(tb, err)

	return v
}

// MustFrom builds a vector from the given values or fails the test.
func MustFrom[T vector.Number](tb testing.TB, vals ...T) *vector.Vector[T] {
	tb.Helper()
	if vals == nil {
		vals = []T{}
	}
	v, err := vector.FromSlice(vals, len(vals))
	require.NoError(tb, err)

	return v
}
