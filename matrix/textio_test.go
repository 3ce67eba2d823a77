// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestWriteToGolden compares the text rendering against testdata/*.golden.
// Regenerate with: go test ./matrix -update
func TestWriteToGolden(t *testing.T) {
	g := goldie.New(t)

	g.Assert(t, "matrix_2x2", []byte(MustRows(t, [][]int{{9, 21}, {24, 57}}).String()))
	g.Assert(t, "matrix_float", []byte(MustRows(t, [][]float64{{0.5, -1}, {2, 3.75}}).String()))
	g.Assert(t, "matrix_filled", []byte(MustFilled(t, 3, 15).String()))

	empty, _ := matrix.New[int](0)
	require.Equal(t, "", empty.String())
}

func TestReadText(t *testing.T) {
	m, err := matrix.New[int](2)
	require.NoError(t, err)

	require.NoError(t, m.ReadText(strings.NewReader("1 2\n4 5\n")))
	require.True(t, m.Equal(MustRows(t, [][]int{{1, 2}, {4, 5}})))

	// line layout does not matter
	require.NoError(t, m.ReadText(strings.NewReader("7 8 9 10")))
	require.True(t, m.Equal(MustRows(t, [][]int{{7, 8}, {9, 10}})))
}

func TestReadTextRoundTrip(t *testing.T) {
	src := MustRows(t, [][]float64{{1, -2.5, 3}, {0, 0, 1e-3}, {7, 8, 9}})
	dst, _ := matrix.New[float64](3)
	require.NoError(t, dst.ReadText(strings.NewReader(src.String())))
	require.True(t, src.Equal(dst))
}

// TestReadTextThenVector reads a matrix and a vector from one stream.
func TestReadTextThenVector(t *testing.T) {
	r := vector.TextReader(strings.NewReader("1 2\n4 5\n1 4\n"))
	m, _ := matrix.New[int](2)
	v, _ := vector.New[int](2)

	require.NoError(t, m.ReadText(r))
	require.NoError(t, v.ReadText(r))

	got, err := m.MulVec(v)
	require.NoError(t, err)
	require.Equal(t, []int{9, 24}, got.Values())
}

func TestReadTextErrors(t *testing.T) {
	m := MustFilled(t, 2, 3)

	err := m.ReadText(strings.NewReader(""))
	require.True(t, errors.Is(err, io.EOF), "got %v", err)

	err = m.ReadText(strings.NewReader("1 2\n"))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = m.ReadText(strings.NewReader("1 2 3"))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = m.ReadText(strings.NewReader("1 2 x 4"))
	require.Error(t, err)

	require.True(t, m.Equal(MustFilled(t, 2, 3))) // unchanged on failure
}
