// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/homology/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped and typed nil.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil[int]((*matrix.Dense[int])(nil)), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil[int](mustNew(t, 1, 1)))
}

// TestValidateSameShape compares rows then columns.
func TestValidateSameShape(t *testing.T) {
	require.NoError(t, matrix.ValidateSameShape[int](mustNew(t, 2, 3), mustNew(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape[int](mustNew(t, 2, 3), mustNew(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape[int](mustNew(t, 2, 3), mustNew(t, 2, 2)), matrix.ErrDimensionMismatch)
}

// TestValidateMulCompatible requires a.Cols == b.Rows.
func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible[int](mustNew(t, 2, 3), mustNew(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible[int](mustNew(t, 2, 3), mustNew(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible[int](nil, mustNew(t, 2, 3)), matrix.ErrNilMatrix)
}

// TestValidateEchelon accepts staircases and rejects violations.
func TestValidateEchelon(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		ok   bool
	}{
		{"empty", nil, true},
		{"identity", [][]int{{1, 0}, {0, 1}}, true},
		{"staircase with zero tail", [][]int{{0, 2, 1}, {0, 0, 3}, {0, 0, 0}}, true},
		{"same leading column", [][]int{{1, 2}, {3, 4}}, false},
		{"zero row above nonzero", [][]int{{0, 0}, {0, 1}}, false},
		{"leading moves left", [][]int{{0, 1}, {1, 0}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustInts(t, tc.rows)
			err := matrix.ValidateEchelon(m)
			if tc.ok {
				require.NoError(t, err)
				require.True(t, m.IsEchelon())
			} else {
				require.ErrorIs(t, err, matrix.ErrNotEchelon)
				require.False(t, m.IsEchelon())
			}
		})
	}

	require.ErrorIs(t, matrix.ValidateEchelon[int](nil), matrix.ErrNilMatrix)
}
