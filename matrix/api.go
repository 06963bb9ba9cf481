// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use FromInts for integer literals; it fixes the ring to ring.Int[int].
//   - Use Echelon when the original matrix must survive the reduction.

package matrix

import "github.com/katalvlaran/homology/ring"

// NewZeros returns a zero-filled rows×cols matrix over rg.
// Thin alias of New with an intention-revealing name.
func NewZeros[T any](rg ring.Ring[T], rows, cols int) (*Dense[T], error) {
	return New(rg, rows, cols)
}

// NewIdentity returns I_n over rg (One on the diagonal, Zero elsewhere).
// Complexity: O(n^2).
func NewIdentity[T any](rg ring.Ring[T], n int) (*Dense[T], error) {
	if rg == nil {
		return nil, matrixErrorf("NewIdentity", ErrNilRing)
	}

	return NewDiag(rg, n, n, rg.One())
}

// ZerosLike returns a new zero matrix with the same shape and ring as m.
func ZerosLike[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New(m.Ring(), m.Rows(), m.Cols())
}

// FromInts builds an integer matrix from a nested literal (ring.Int[int]).
// Errors: ErrRaggedInput.
func FromInts(rows [][]int) (*Dense[int], error) {
	return FromRows[int](ring.Int[int]{}, rows)
}

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T any](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// Echelon returns a reduced copy of m and its rank; m is left untouched.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) copy + O(r*c*min(r,c)) reduction.
func Echelon[T any](m *Dense[T]) (*Dense[T], int, error) {
	if m == nil {
		return nil, 0, matrixErrorf("Echelon", ErrNilMatrix)
	}
	cp := m.Clone()
	rank := cp.Reduce()

	return cp, rank, nil
}
