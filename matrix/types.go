// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense container and the kernels.
// This file intentionally contains ONLY the public Matrix interface; errors and
// the concrete container live in dedicated files (errors.go, impl_dense.go).
package matrix

import "github.com/katalvlaran/homology/ring"

// Matrix is a two-dimensional mutable grid of ring elements.
//
// Kernels (Mul, Transpose, Equal) accept any implementation and take a fast
// path when every operand is a *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Ring returns the arithmetic used for the elements.
	Ring() ring.Ring[T]
}
