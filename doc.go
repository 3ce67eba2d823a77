// SPDX-License-Identifier: MIT

// Package dynmat is a small generic library of dense numeric containers:
// a dynamically sized vector and a square matrix built from it.
//
// What is inside?
//
//	vector/        Vector[T]: owned storage, checked & unchecked access,
//	                 copy/move/swap, scalar & elementwise ops, dot product
//	matrix/        Matrix[T]: n rows of vector.Vector[T], M×scalar, M×v,
//	                 M±M, M×M, transpose, identity, gonum interop
//	cmd/tmatrix/   command-line front end over both packages
//
// Element types are any Go integer or float (vector.Number). Every
// arithmetic operation returns a fresh value, so operands may alias the
// destination:
//
//	a, _ := matrix.NewFilled[int](2, 1)
//	p, _ := a.Mul(a)
//	_ = a.Assign(p)
//
// Errors are sentinels (ErrInvalidSize, ErrOutOfRange, ErrSizeMismatch,
// ErrInvalidArgument) wrapped with method context; match them with errors.Is.
//
// Text I/O is whitespace-delimited: a vector prints as "1 2 3", a matrix
// prints one row per line. ReadText consumes exactly as many values as the
// receiver holds.
package dynmat
