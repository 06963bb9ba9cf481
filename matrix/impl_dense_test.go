// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense container.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/homology/matrix"
	"github.com/katalvlaran/homology/ring"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures New rejects negative dimensions and a nil ring.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New[int](ring.Int[int]{}, -1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New[int](ring.Int[int]{}, 5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New[int](nil, 2, 2)
	require.ErrorIs(t, err, matrix.ErrNilRing)
}

// TestZeroAreaShapes checks 0×0, 0×n and n×0 are legal.
func TestZeroAreaShapes(t *testing.T) {
	for _, sh := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		m := mustNew(t, sh[0], sh[1])
		r, c := m.Shape()
		require.Equal(t, sh[0], r)
		require.Equal(t, sh[1], c)
		require.True(t, m.IsZero())
		require.Equal(t, sh[0], m.DimKernel())
	}
}

// TestNewDiag places the value on min(rows, cols) diagonal cells only.
func TestNewDiag(t *testing.T) {
	m, err := matrix.NewDiag[int](ring.Int[int]{}, 2, 3, 7)
	require.NoError(t, err)
	require.Equal(t, [][]int{{7, 0, 0}, {0, 7, 0}}, toRows(t, m))

	m, err = matrix.NewDiag[int](ring.Int[int]{}, 3, 2, 1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0}, {0, 1}, {0, 0}}, toRows(t, m))
}

// TestNewUsesRingZero verifies cells start at the ring's zero, not T's zero value.
func TestNewUsesRingZero(t *testing.T) {
	m, err := matrix.New[int](shiftedZero{}, 2, 2)
	require.NoError(t, err)
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 100, v)
	require.True(t, m.IsZero())
}

// shiftedZero is an Int ring whose additive identity is represented as 100.
type shiftedZero struct{ ring.Int[int] }

func (shiftedZero) Zero() int         { return 100 }
func (shiftedZero) IsZero(a int) bool { return a == 100 }

// TestFromRowsRoundTrip reads back every element of a literal.
func TestFromRowsRoundTrip(t *testing.T) {
	rows := [][]int{{1, -2, 3}, {4, 5, -6}}
	m := mustInts(t, rows)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := range rows {
		for j := range rows[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, rows[i][j], v)
		}
	}

	// The literal is copied, not aliased.
	rows[0][0] = 99
	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
}

// TestFromRowsRagged turns unequal row lengths into ErrRaggedInput.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromInts([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedInput)
	require.Contains(t, err.Error(), "row 1")

	_, err = matrix.FromInts([][]int{{1}, {2}, {3, 4}})
	require.ErrorIs(t, err, matrix.ErrRaggedInput)

	m, err := matrix.FromInts(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())

	_, err = matrix.FromRows[int](nil, [][]int{{1}})
	require.ErrorIs(t, err, matrix.ErrNilRing)
}

// TestAtSetOutOfRange ensures indexers return ErrOutOfRange.
func TestAtSetOutOfRange(t *testing.T) {
	m := mustNew(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustInts(t, [][]int{{1, 0}, {0, 2}})
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 3))

	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
	v, _ = cl.At(0, 0)
	require.Equal(t, 3, v)
	require.False(t, m.Equal(cl))
}

// TestEqual covers shape, value and nil comparisons, including the fallback path.
func TestEqual(t *testing.T) {
	a := mustInts(t, [][]int{{1, 2}, {3, 4}})
	b := mustInts(t, [][]int{{1, 2}, {3, 4}})
	c := mustInts(t, [][]int{{1, 2, 0}, {3, 4, 0}})
	d := mustInts(t, [][]int{{1, 2}, {3, 5}})

	require.True(t, a.Equal(b))
	require.True(t, a.Equal(hide[int]{b}))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))
	require.False(t, a.Equal(hide[int]{d}))
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal((*matrix.Dense[int])(nil)))
}

// TestSwapRowsCols exchanges lines in place and treats i==j as a no-op.
func TestSwapRowsCols(t *testing.T) {
	m := mustInts(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, m.SwapRows(0, 1))
	require.Equal(t, [][]int{{4, 5, 6}, {1, 2, 3}}, toRows(t, m))

	require.NoError(t, m.SwapCols(0, 2))
	require.Equal(t, [][]int{{6, 5, 4}, {3, 2, 1}}, toRows(t, m))

	require.NoError(t, m.SwapRows(1, 1))
	require.NoError(t, m.SwapCols(1, 1))
	require.Equal(t, [][]int{{6, 5, 4}, {3, 2, 1}}, toRows(t, m))

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, 0), matrix.ErrOutOfRange)
}

// TestStringOutput checks the row-wise dump.
func TestStringOutput(t *testing.T) {
	m := mustInts(t, [][]int{{1, 2}, {3, -4}})
	require.Equal(t, "[1, 2]\n[3, -4]\n", m.String())
	require.Equal(t, "", mustNew(t, 0, 0).String())
}
