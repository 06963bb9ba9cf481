// SPDX-License-Identifier: MIT
// Package matrix: fraction-free (Bareiss) row-echelon reduction and the
// rank/kernel/image quantities read off the reduced form.
//
// Purpose:
//   - Reduce a matrix in place to row-echelon ("staircase") form without
//     fractions: every intermediate entry stays a ring element when the
//     ring's division is exact (integers, Z/p).
//   - Expose Rank, DimKernel and DimImage for the chain layer.
//
// Conventions:
//   - Maps act on row vectors: an r×c matrix sends a length-r row to a
//     length-c row, so its kernel lives in the r-dimensional source and
//     DimKernel + DimImage == Rows().
//
// Determinism:
//   - Pivot choice is the first nonzero entry scanning downward; fixed
//     i→j update order; no randomness.

package matrix

// Reduce brings m to row-echelon form in place using Bareiss elimination and
// returns the number of pivots found (the rank).
//
// Implementation:
//   - prev := One(), row := 0.
//   - For each column k while row < Rows(): find the first ind ≥ row with a
//     nonzero (ind,k). None → the column has no pivot; continue.
//   - Swap ind into position row. For every i > row and j > k:
//     a[i][j] = (a[row][k]*a[i][j] − a[i][k]*a[row][j]) / prev, then a[i][k] = Zero().
//   - prev = a[row][k]; row++.
//
// Behavior highlights:
//   - Entries strictly below the staircase are exactly Zero() afterwards.
//   - Rows above the current pivot row are never modified.
//   - Columns keep being scanned after min(Rows, Cols) as long as rows remain,
//     so wide matrices with pivot-free leading columns are still fully reduced.
//
// Preconditions:
//   - Division by prev must be exact in the ring. This is not checked; for
//     Int[T] a violation silently truncates, for Float[T] it rounds.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(1) extra.
//
// AI-Hints:
//   - Clone first when the original entries are still needed (e.g. for the
//     chain condition, which must be checked before reduction).
func (m *Dense[T]) Reduce() int {
	if m.r == 0 || m.c == 0 || m.rg == nil {
		return 0 // empty (incl. the zero value Dense[T]{}): nothing to eliminate
	}
	rg := m.rg
	prev := rg.One()
	row := 0
	var (
		i, j, ind int
		pivot, f  T
		base, pb  int
	)
	for k := 0; k < m.c && row < m.r; k++ {
		// Locate the first usable pivot in column k at or below row.
		for ind = row; ind < m.r; ind++ {
			if !rg.IsZero(m.data[ind*m.c+k]) {
				break
			}
		}
		if ind == m.r {
			continue // no pivot in this column
		}
		if ind != row {
			m.swapRows(row, ind)
		}

		pb = row * m.c
		pivot = m.data[pb+k]
		for i = row + 1; i < m.r; i++ {
			base = i * m.c
			f = m.data[base+k]
			for j = k + 1; j < m.c; j++ {
				num := rg.Sub(rg.Mul(pivot, m.data[base+j]), rg.Mul(f, m.data[pb+j]))
				m.data[base+j] = rg.Quo(num, prev)
			}
			m.data[base+k] = rg.Zero()
		}
		prev = pivot
		row++
	}

	return row
}

// ToStairCase is an alias for Reduce that discards the pivot count.
func (m *Dense[T]) ToStairCase() { m.Reduce() }

// leadingColumn returns the column of the first nonzero entry of row i, or -1.
func (m *Dense[T]) leadingColumn(i int) int {
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if !m.rg.IsZero(m.data[base+j]) {
			return j
		}
	}

	return -1
}

// IsEchelon reports whether m is in row-echelon form (see ValidateEchelon).
func (m *Dense[T]) IsEchelon() bool { return ValidateEchelon(m) == nil }

// Rank counts the nonzero rows of m.
// Precondition: m is in echelon form (after Reduce); on other matrices the
// count is only an upper bound of the true rank.
// Complexity: O(r*c) worst case.
func (m *Dense[T]) Rank() int {
	n := 0
	for i := 0; i < m.r; i++ {
		if m.leadingColumn(i) >= 0 {
			n++
		}
	}

	return n
}

// DimKernel returns the number of consecutive zero rows at the bottom of m:
// the dimension of the row vectors that m sends to zero.
// Precondition: m is in echelon form, where this equals Rows() − Rank().
//
// Only the trailing rows are inspected, so a nonzero last row yields 0
// regardless of the other rows.
// Complexity: O(c) per trailing zero row.
func (m *Dense[T]) DimKernel() int {
	n := 0
	for i := m.r - 1; i >= 0 && m.leadingColumn(i) < 0; i-- {
		n++
	}

	return n
}

// DimImage returns Rows() − DimKernel(), i.e. the rank.
// Precondition: m is in echelon form.
func (m *Dense[T]) DimImage() int { return m.r - m.DimKernel() }
