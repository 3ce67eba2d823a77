// SPDX-License-Identifier: MIT

// Package vector - whitespace-delimited text I/O.
//
// Format:
//   - Write: Len() values in order separated by a single space; no length
//     prefix, no delimiters, no trailing newline.
//   - Read: exactly Len() values separated by any whitespace (newlines
//     included). The vector's length is never changed by reading.

package vector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Formatting literals.
const (
	_fmtSep = " "
)

// ScanReader is a reader that can unread one rune, which lets fmt.Fscan
// stop exactly at the end of each value.
type ScanReader interface {
	io.Reader
	io.RuneScanner
}

// TextReader returns r as a ScanReader, wrapping it in a bufio.Reader only
// when r cannot unread. Reuse the returned reader across consecutive
// ReadText calls on the same stream; without unread support fmt.Fscan
// consumes one rune past each value.
func TextReader(r io.Reader) ScanReader {
	if sr, ok := r.(ScanReader); ok {
		return sr
	}

	return bufio.NewReader(r)
}

// countingWriter tracks bytes written for io.WriterTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)

	return n, err
}

// WriteTo writes the elements as space-separated text.
// It implements io.WriterTo.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			if _, err := io.WriteString(cw, _fmtSep); err != nil {
				return cw.n, err
			}
		}
		if _, err := fmt.Fprint(cw, v.data[i]); err != nil {
			return cw.n, err
		}
	}

	return cw.n, nil
}

// String renders the vector in the same format as WriteTo.
func (v *Vector[T]) String() string {
	var b strings.Builder
	_, _ = v.WriteTo(&b) // strings.Builder never fails

	return b.String()
}

// ReadText reads exactly Len() values from r into the vector.
// MAIN DESCRIPTION:
//   - Parse whitespace-separated values into existing storage.
//
// Implementation:
//   - Stage 1: scan into a scratch buffer so a failure leaves v untouched.
//   - Stage 2: copy the scratch buffer into storage.
//
// Errors:
//   - io.EOF when r is empty and Len() > 0; io.ErrUnexpectedEOF when the
//     input ends early; the fmt scan error for malformed values. All are
//     wrapped with the index of the failing value.
//
// Notes:
//   - Pass a reader from TextReader when reading several vectors (or a
//     matrix's rows) from one stream.
func (v *Vector[T]) ReadText(r io.Reader) error {
	n := v.Len()
	if n == 0 {
		return nil
	}
	rs := TextReader(r)
	scratch := make([]T, n)
	for i := 0; i < n; i++ {
		if _, err := fmt.Fscan(rs, &scratch[i]); err != nil {
			if err == io.EOF && i > 0 {
				err = io.ErrUnexpectedEOF
			}
			return vectorErrorf(ctxReadText, i, err)
		}
	}
	copy(v.data, scratch)

	return nil
}
