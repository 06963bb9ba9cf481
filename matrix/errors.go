// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped) and tests
// MUST check them via errors.Is. No kernel panics on caller-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites wrap
// with an operation tag (matrixErrorf / denseErrorf); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil ring/matrix -> shape/ragged input -> index -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Swap*) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedInput signals a nested-rows literal whose rows differ in length.
	ErrRaggedInput = errors.New("matrix: rows have unequal length")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotEchelon signals that a matrix expected in row-echelon form is not.
	ErrNotEchelon = errors.New("matrix: matrix is not in row-echelon form")

	// ErrNilRing indicates that a constructor received no element ring.
	ErrNilRing = errors.New("matrix: nil ring")
)
