// SPDX-License-Identifier: MIT

// Package simplicial turns abstract simplicial complexes into boundary
// matrices and chain complexes.
//
// Simplices are lists of vertex names. Build canonicalizes them (sorted
// vertices, lexicographic order per dimension) and checks that every face is
// present, or adds the missing ones with WithClosure. The resulting Complex
// emits ∂_0 … ∂_{n+1} in the row-vector convention of package chain, so
//
//	c, _ := simplicial.Build(simplices, simplicial.WithClosure())
//	betti, _ := c.Betti() // β_0 … β_n over the integers
//
// ChainOf and BoundaryOf build the same maps over any ring.Ring, for example
// ring.Mod to obtain Betti numbers modulo a prime.
package simplicial
