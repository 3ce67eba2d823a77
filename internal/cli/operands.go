// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// stdinOperand names the standard-input operand.
const stdinOperand = "-"

// operandSource resolves operand names to readers. All "-" operands share
// one buffered stdin reader so consecutive operands do not lose input.
type operandSource struct {
	in      io.Reader
	stdin   vector.ScanReader
	closers []io.Closer
	readers []namedReader // every distinct stream handed out, in order
}

type namedReader struct {
	name string
	r    vector.ScanReader
}

func newOperandSource(in io.Reader) *operandSource {
	return &operandSource{in: in}
}

// open returns a reader for the operand; files stay open until Close.
func (s *operandSource) open(name string) (io.Reader, error) {
	if name == stdinOperand {
		if s.stdin == nil {
			s.stdin = vector.TextReader(s.in)
			s.readers = append(s.readers, namedReader{name: name, r: s.stdin})
		}
		return s.stdin, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("open operand %q", name), err)
	}
	s.closers = append(s.closers, f)
	r := vector.TextReader(f)
	s.readers = append(s.readers, namedReader{name: name, r: r})
	return r, nil
}

// finish reports input left over after the last operand was read from any
// stream. Trailing whitespace is allowed.
func (s *operandSource) finish() error {
	for _, nr := range s.readers {
		for {
			c, _, err := nr.r.ReadRune()
			if err == io.EOF {
				break
			}
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("read operand %q", nr.name), err)
			}
			if !unicode.IsSpace(c) {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("operand %q: unexpected trailing input %q", nr.name, c), nil)
			}
		}
	}
	return nil
}

// Close closes every file opened by the source.
func (s *operandSource) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

func readVector[T vector.Number](s *operandSource, f *OutputFormatter, name string, n int) (*vector.Vector[T], error) {
	r, err := s.open(name)
	if err != nil {
		return nil, err
	}
	v, err := vector.New[T](n)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("vector operand %q", name), err)
	}
	if err := v.ReadText(r); err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("read vector operand %q", name), err)
	}
	f.VerboseLog("read vector %q: %d values", name, v.Len())
	return v, nil
}

func readMatrix[T vector.Number](s *operandSource, f *OutputFormatter, name string, n int) (*matrix.Matrix[T], error) {
	r, err := s.open(name)
	if err != nil {
		return nil, err
	}
	m, err := matrix.New[T](n)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("matrix operand %q", name), err)
	}
	if err := m.ReadText(r); err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("read matrix operand %q", name), err)
	}
	f.VerboseLog("read matrix %q: %dx%d", name, m.Size(), m.Size())
	return m, nil
}

// parseScalar parses s as a T using the same rules as the text reader.
// The whole string must be consumed, so "2.5" is rejected for integers.
func parseScalar[T vector.Number](s string) (T, error) {
	var k T
	r := strings.NewReader(s)
	if _, err := fmt.Fscan(r, &k); err != nil {
		return k, WrapExitError(ExitCommandError, fmt.Sprintf("invalid scalar %q", s), err)
	}
	if rest, _ := io.ReadAll(r); strings.TrimSpace(string(rest)) != "" {
		return k, WrapExitError(ExitCommandError, fmt.Sprintf("invalid scalar %q", s), nil)
	}
	return k, nil
}
