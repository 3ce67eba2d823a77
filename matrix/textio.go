// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dynmat/vector"
)

const _fmtRowClose = "\n"

// WriteTo writes one row per line using the vector text format; every row,
// including the last, ends with a newline. It implements io.WriterTo.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := 0; i < m.Size(); i++ {
		n, err := m.rows[i].WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
		k, err := io.WriteString(w, _fmtRowClose)
		total += int64(k)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// String renders the matrix in the same format as WriteTo.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	_, _ = m.WriteTo(&b)

	return b.String()
}

// ReadText reads Size() rows of Size() values each from r. Line breaks are
// treated as ordinary whitespace, so values need not be laid out row per
// line. On failure the matrix is left unchanged.
//
// Errors:
//   - the row's read error (io.EOF, io.ErrUnexpectedEOF, scan errors),
//     wrapped with the row index.
func (m *Matrix[T]) ReadText(r io.Reader) error {
	n := m.Size()
	if n == 0 {
		return nil
	}
	rs := vector.TextReader(r)
	scratch := make([]*vector.Vector[T], n)
	for i := 0; i < n; i++ {
		row, err := vector.New[T](n)
		if err != nil {
			return matrixErrorf(opReadText, err)
		}
		if err = row.ReadText(rs); err != nil {
			if i > 0 && errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("Matrix.%s: row %d: %w", opReadText, i, err)
		}
		scratch[i] = row
	}
	m.rows = scratch

	return nil
}
