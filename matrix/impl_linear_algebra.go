// SPDX-License-Identifier: MIT
// Package matrix provides ring-generic operations on any Matrix implementation:
// matrix multiplication and transpose. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used by the chain layer (products for the
//     chain condition) and by callers composing maps.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - The result always carries the ring of the left operand.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Allocate C (A.Rows × B.Cols) filled with the ring zero, which
//     seeds every dot-product accumulator.
//   - Stage 3: If A and B are *Dense, use i→k→j with row-major strides and skip
//     zero A[i,k]; otherwise use i→j→k through At.
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C.
//   - Inner dimension 0 is legal and yields the zero matrix of shape A.Rows × B.Cols.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c), ring of A.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Product of consecutive boundary maps must be IsZero() for a chain complex.
func Mul[T any](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rg := a.Ring()
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDense(rg, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int // loop iterators
		av, bv  T
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if rg.IsZero(av) {
						continue // skip zero
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] = rg.Add(res.data[rowOffsetR+j], rg.Mul(av, db.data[rowOffsetB+j]))
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var current T
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = rg.Zero()
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if rg.IsZero(av) {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current = rg.Add(current, rg.Mul(av, bv))
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDense(m.Ring(), cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	if d, ok := m.(*Dense[T]); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
