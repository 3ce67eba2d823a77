// SPDX-License-Identifier: MIT

// Package matrix provides Matrix[T], a square n×n numeric matrix composed
// of n independently owned vector.Vector[T] rows.
//
// The matrix offers:
//
//   - Construction with a dimension bound (New, NewFilled, Identity).
//   - Checked cell access (At, Set, Ref) and unchecked row access (Row).
//   - Value semantics mirroring package vector: Clone, Assign, Move,
//     MoveFrom, Swap.
//   - Algebra: MulScalar, MulVec, Add, Sub, Mul, Transpose. Results are
//     always freshly allocated; operands are never mutated.
//   - Text I/O, one row per line (WriteTo, ReadText).
//   - gonum interop (ToGonum, FromGonum).
//
// Errors are the sentinels shared with package vector; see errors.go.
package matrix
