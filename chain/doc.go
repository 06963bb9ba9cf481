// Package chain assembles boundary maps into a chain complex and computes
// homology dimensions from their echelon forms.
//
// A Complex holds maps d₀, d₁, …, d_{n−1}. Maps act on row vectors, so d_i
// has shape dim C_i × dim C_{i−1} and the chain condition reads
// d_i · d_{i−1} = 0 for every i ≥ 1.
//
// Typical flow:
//
//	cx, _ := chain.New(d0, d1, d2)
//	ok, _ := cx.CheckHomology() // before Reduce: reduction rewrites entries
//	cx.Reduce()
//	h, _ := cx.Homology(1)      // DimKernel(d1) − DimImage(d2)
package chain
