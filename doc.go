// Package homology is an in-memory toolkit for exact linear algebra over
// generic rings and for the homology of chain complexes built from it.
//
// What is in the box?
//
//   - Rings: integers, floats with optional tolerance, Z/p for prime p
//   - Dense matrices: construction, product, row/column swaps, transpose
//   - Fraction-free (Bareiss) elimination to row-echelon form, rank,
//     kernel and image dimensions
//   - Chain complexes: chain-condition check, reduction, Betti numbers
//   - Simplicial complexes: boundary matrices from lists of simplices
//   - A CLI that reads a complex from YAML and prints its homology
//
// Under the hood, everything is organized under four subpackages:
//
//	ring/       — Ring[T] capability interface and the stock rings
//	matrix/     — Dense[T], Mul, Reduce, DimKernel / DimImage
//	chain/      — Complex[T]: ordered boundary maps and Homology
//	simplicial/ — Build, Boundary, ChainOf, Betti
//
// Quick start:
//
//	c, _ := simplicial.Build([][]string{{"a", "b"}, {"b", "c"}, {"a", "c"}},
//		simplicial.WithClosure())
//	betti, _ := c.Betti() // [1 1]: one component, one loop
//
// Conventions:
//
//	Maps act on row vectors: d_i has shape dim C_i × dim C_{i−1} and the
//	chain condition reads d_i · d_{i−1} = 0. Homology(i) is
//	DimKernel(d_i) − DimImage(d_{i+1}) on reduced maps.
//
// The core packages never log, never panic on caller input, and return
// sentinel errors wrapped with the failing operation.
package homology
