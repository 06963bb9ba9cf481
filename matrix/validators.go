// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (except IsEchelon's O(1) state).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports an untyped nil interface or a typed nil *Dense.
func isNil[T any](m Matrix[T]) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return true
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil (typed nil *Dense included).
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil[T any](m Matrix[T]) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape[T any](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// The inner dimensions must agree for the product a×b to be defined; the
// result then has shape a.Rows × b.Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateEchelon checks the staircase shape: the leading nonzero entry of
// each row lies strictly right of the leading entry of the row above, and
// zero rows only appear below all nonzero rows.
//
// Errors: ErrNilMatrix, ErrNotEchelon (with the offending row).
// Complexity: O(r*c) worst case, O(1) extra space.
func ValidateEchelon[T any](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateEchelon", ErrNilMatrix)
	}
	prevLead := -1    // leading column of the previous nonzero row
	seenZero := false // a zero row has been observed
	for i := 0; i < m.r; i++ {
		lead := m.leadingColumn(i)
		switch {
		case lead < 0:
			seenZero = true
		case seenZero || lead <= prevLead:
			return validatorErrorf("ValidateEchelon", fmt.Errorf("row %d: %w", i, ErrNotEchelon))
		default:
			prevLead = lead
		}
	}

	return nil
}
