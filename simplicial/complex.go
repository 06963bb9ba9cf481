// SPDX-License-Identifier: MIT
// Package simplicial: boundary-matrix builders for abstract simplicial complexes.
//
// An abstract simplicial complex is given as a list of simplices, each a set
// of vertex names. Build canonicalizes the input and Boundary emits the
// boundary maps in the row-vector convention of the chain package:
//
//	∂_k has one row per k-simplex and one column per (k−1)-simplex; the row of
//	σ = [v_0 < … < v_k] holds (−1)^i in the column of the face omitting v_i.
//
// The graph incidence matrix (−1 at the source, +1 at the target) is exactly
// ∂_1ᵀ for the 1-skeleton; Betti numbers β_0 and β_1 of a graph count its
// connected components and independent cycles.
//
// Determinism:
//   - Vertex names are sorted inside each simplex.
//   - Simplices of each dimension are ordered lexicographically.
//   - Duplicate simplices are collapsed (first occurrence wins).

package simplicial

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/homology/chain"
	"github.com/katalvlaran/homology/matrix"
	"github.com/katalvlaran/homology/ring"
)

// keySep joins vertex names into map keys; canonical rejects names containing it.
const keySep = "\x00"

// Simplex is a canonical (sorted, duplicate-free) list of vertex names.
type Simplex []string

// Dim returns len(s) − 1.
func (s Simplex) Dim() int { return len(s) - 1 }

// String renders the simplex as "[a b c]".
func (s Simplex) String() string { return "[" + strings.Join(s, " ") + "]" }

func (s Simplex) key() string { return strings.Join(s, keySep) }

// Complex is a validated simplicial complex grouped by dimension.
type Complex struct {
	byDim [][]Simplex      // byDim[k]: k-simplices in lexicographic order
	index []map[string]int // index[k]: simplex key → row in ∂_k
}

// Build canonicalizes simplices into a Complex.
//
// Implementation:
//   - Stage 1: sort the vertices of each simplex; reject empty ones and repeated vertices.
//   - Stage 2: collapse duplicates; with WithClosure, add every face recursively.
//   - Stage 3: in strict mode, verify every codimension-1 face is present.
//   - Stage 4: order each dimension lexicographically and index rows.
//
// Errors:
//   - ErrEmptySimplex, ErrDuplicateVertex, ErrInvalidVertex, ErrMissingFace (each naming the simplex).
//
// Complexity:
//   - Time O(N·k·log N) for N simplices of size ≤ k+1; Space O(N·k).
func Build(simplices [][]string, optFns ...Option) (*Complex, error) {
	opts := gatherOptions(optFns...)

	seen := make(map[string]struct{}, len(simplices))
	var all []Simplex
	add := func(s Simplex) bool {
		k := s.key()
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		all = append(all, s)

		return true
	}

	for i, raw := range simplices {
		s, err := canonical(raw)
		if err != nil {
			return nil, fmt.Errorf("Build: simplex %d %v: %w", i, raw, err)
		}
		if !add(s) || !opts.closure {
			continue
		}
		// Downward closure: breadth-first over faces.
		queue := []Simplex{s}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, f := range faces(cur) {
				if add(f) {
					queue = append(queue, f)
				}
			}
		}
	}

	if !opts.closure {
		for _, s := range all {
			for _, f := range faces(s) {
				if _, ok := seen[f.key()]; !ok {
					return nil, fmt.Errorf("Build: face %v of %v: %w", f, s, ErrMissingFace)
				}
			}
		}
	}

	return newComplex(all), nil
}

// canonical sorts a raw simplex and validates it.
func canonical(raw []string) (Simplex, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySimplex
	}
	for _, v := range raw {
		if strings.Contains(v, keySep) {
			return nil, fmt.Errorf("vertex %q: %w", v, ErrInvalidVertex)
		}
	}
	s := slices.Clone(raw)
	slices.Sort(s)
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			return nil, fmt.Errorf("vertex %q: %w", s[i], ErrDuplicateVertex)
		}
	}

	return Simplex(s), nil
}

// faces returns the codimension-1 faces of s; faces(s)[i] omits vertex i.
// Vertices have no faces (the augmentation is not part of the complex).
func faces(s Simplex) []Simplex {
	if len(s) <= 1 {
		return nil
	}
	out := make([]Simplex, len(s))
	for i := range s {
		f := make(Simplex, 0, len(s)-1)
		f = append(f, s[:i]...)
		f = append(f, s[i+1:]...)
		out[i] = f
	}

	return out
}

// newComplex groups, orders and indexes canonical simplices.
func newComplex(all []Simplex) *Complex {
	top := -1
	for _, s := range all {
		top = max(top, s.Dim())
	}
	c := &Complex{
		byDim: make([][]Simplex, top+1),
		index: make([]map[string]int, top+1),
	}
	for _, s := range all {
		c.byDim[s.Dim()] = append(c.byDim[s.Dim()], s)
	}
	for k := range c.byDim {
		slices.SortFunc(c.byDim[k], func(a, b Simplex) int { return slices.Compare(a, b) })
		c.index[k] = make(map[string]int, len(c.byDim[k]))
		for row, s := range c.byDim[k] {
			c.index[k][s.key()] = row
		}
	}

	return c
}

// Dim returns the top dimension, or −1 for the empty complex.
func (c *Complex) Dim() int { return len(c.byDim) - 1 }

// Count returns the number of k-simplices (0 outside [0, Dim()]).
func (c *Complex) Count(k int) int {
	if k < 0 || k >= len(c.byDim) {
		return 0
	}

	return len(c.byDim[k])
}

// Simplices returns a copy of the k-simplices in row order of ∂_k.
func (c *Complex) Simplices(k int) []Simplex {
	if k < 0 || k >= len(c.byDim) {
		return nil
	}
	out := make([]Simplex, len(c.byDim[k]))
	for i, s := range c.byDim[k] {
		out[i] = slices.Clone(s)
	}

	return out
}

// EulerCharacteristic returns Σ (−1)^k · Count(k).
func (c *Complex) EulerCharacteristic() int {
	chi := 0
	for k := range c.byDim {
		if k%2 == 0 {
			chi += len(c.byDim[k])
		} else {
			chi -= len(c.byDim[k])
		}
	}

	return chi
}

// BoundaryOf returns ∂_k over rg with shape Count(k) × Count(k−1).
// k = 0 gives the Count(0)×0 map to the zero group and k = Dim()+1 the
// 0×Count(Dim()) map from it, so that the chain covers every dimension.
//
// Errors: ErrDimension for k outside [0, Dim()+1]; matrix allocation errors.
// Complexity: O(Count(k)·Count(k−1)) for the zero fill + O(Count(k)·(k+1)) writes.
func BoundaryOf[T any](c *Complex, rg ring.Ring[T], k int) (*matrix.Dense[T], error) {
	if k < 0 || k > c.Dim()+1 {
		return nil, fmt.Errorf("Boundary(%d): %w", k, ErrDimension)
	}
	m, err := matrix.New(rg, c.Count(k), c.Count(k-1))
	if err != nil {
		return nil, fmt.Errorf("Boundary(%d): %w", k, err)
	}
	if k == 0 {
		return m, nil
	}
	pos := rg.One()
	neg := rg.Sub(rg.Zero(), pos)
	for row, s := range c.byDim[k] {
		for i, f := range faces(s) {
			col := c.index[k-1][f.key()] // present: Build guarantees closure
			v := pos
			if i%2 == 1 {
				v = neg
			}
			if err = m.Set(row, col, v); err != nil {
				return nil, fmt.Errorf("Boundary(%d): %w", k, err)
			}
		}
	}

	return m, nil
}

// ChainOf assembles [∂_0, ∂_1, …, ∂_{Dim()+1}] over rg.
// Homology(i) of the result is the i-th Betti number over rg.
func ChainOf[T any](c *Complex, rg ring.Ring[T]) (*chain.Complex[T], error) {
	maps := make([]*matrix.Dense[T], c.Dim()+2)
	for k := range maps {
		d, err := BoundaryOf(c, rg, k)
		if err != nil {
			return nil, err
		}
		maps[k] = d
	}

	return chain.New(maps...)
}

// Boundary is BoundaryOf over the integers.
func (c *Complex) Boundary(k int) (*matrix.Dense[int], error) {
	return BoundaryOf[int](c, ring.Int[int]{}, k)
}

// Chain is ChainOf over the integers.
func (c *Complex) Chain() (*chain.Complex[int], error) {
	return ChainOf[int](c, ring.Int[int]{})
}

// Betti builds, reduces and returns the Betti numbers β_0 … β_Dim() over the
// integers (equivalently, over the rationals).
func (c *Complex) Betti() ([]int, error) {
	cx, err := c.Chain()
	if err != nil {
		return nil, err
	}
	cx.Reduce()

	return cx.Betti()
}
