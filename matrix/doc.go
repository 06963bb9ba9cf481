// Package matrix provides a dense, ring-generic matrix and exact row-echelon
// reduction.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major container over any element type with a ring.Ring[T],
//     bounds-checked At/Set, deep Clone, row/column swaps and value equality.
//   - Mul/Transpose kernels accepting any Matrix[T] implementation.
//   - Reduce: Bareiss fraction-free elimination to row-echelon form, plus
//     Rank, DimKernel and DimImage read off the reduced form.
//
// Maps act on row vectors (x ↦ x·A), so for an r×c matrix the kernel lives in
// the r-dimensional source and DimKernel + DimImage == r. The chain package
// relies on this convention when composing boundary maps.
//
// Example:
//
//	a, _ := matrix.FromInts([][]int{{5, 6}, {7, -8}})
//	rank := a.Reduce() // a == [[5, 6], [0, -82]], rank == 2
package matrix
