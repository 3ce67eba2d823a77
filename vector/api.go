// SPDX-License-Identifier: MIT
// Package vector: public API facades.
//
// Thin package-level aliases over the methods, for call sites that read
// better as functions (e.g. when passing operations around as values).
// Nil operands are reported as ErrInvalidArgument, same as the methods.

package vector

// Sum is an alias for a.Add(b): elementwise a + b.
func Sum[T Number](a, b *Vector[T]) (*Vector[T], error) { return a.Add(b) }

// Diff is an alias for a.Sub(b): elementwise a − b.
func Diff[T Number](a, b *Vector[T]) (*Vector[T], error) { return a.Sub(b) }

// DotProduct is an alias for a.Dot(b).
func DotProduct[T Number](a, b *Vector[T]) (T, error) { return a.Dot(b) }

// ScaleBy is an alias for v.MulScalar(alpha).
func ScaleBy[T Number](v *Vector[T], alpha T) *Vector[T] { return v.MulScalar(alpha) }
