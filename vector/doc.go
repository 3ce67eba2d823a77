// SPDX-License-Identifier: MIT

// Package vector provides Vector[T], a dense, fixed-length numeric container
// with value semantics.
//
// What & Why:
//
//	A Vector exclusively owns its storage. Clone and Assign deep-copy,
//	Move and MoveFrom transfer storage and leave the source empty, and Swap
//	exchanges storage in O(1). Arithmetic (AddScalar, Add, Dot, ...) always
//	returns fresh results, so operands are never aliased with outputs.
//
// Access comes in two flavors:
//
//	At / SetAt / Ref  bounds-checked, return ErrOutOfRange
//	Get / Set / Ptr   unchecked fast path, panic like a slice index
//
// Text I/O reads and writes Len() whitespace-separated values with no
// length prefix; see WriteTo and ReadText.
//
// Errors are the sentinels in errors.go, wrapped with method context; match
// them with errors.Is.
package vector
