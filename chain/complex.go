// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"

	"github.com/katalvlaran/homology/matrix"
)

// Operation tags for error wrapping.
const (
	opNew           = "New"
	opNewFilled     = "NewFilled"
	opAt            = "At"
	opSet           = "Set"
	opCheckHomology = "CheckHomology"
	opHomology      = "Homology"
)

// chainErrorf wraps err with an operation tag, preserving it for errors.Is.
func chainErrorf(tag string, err error) error {
	return fmt.Errorf("chain.%s: %w", tag, err)
}

// Complex is an ordered sequence of boundary maps. Every map is exclusively
// owned: inputs are cloned on the way in, so later mutation by the caller
// never reaches the complex.
type Complex[T any] struct {
	maps    []*matrix.Dense[T]
	reduced bool // every map is in echelon form
}

// New builds a complex from maps in index order (d₀ first).
// Errors: ErrNilMap (with the offending index).
// Complexity: O(Σ r_i*c_i) for the clones.
func New[T any](maps ...*matrix.Dense[T]) (*Complex[T], error) {
	cx := &Complex[T]{maps: make([]*matrix.Dense[T], len(maps))}
	for i, m := range maps {
		if m == nil {
			return nil, chainErrorf(opNew, fmt.Errorf("map %d: %w", i, ErrNilMap))
		}
		cx.maps[i] = m.Clone()
	}

	return cx, nil
}

// NewFilled builds a complex of n independent copies of m.
// Errors: ErrNegativeLength, ErrNilMap.
func NewFilled[T any](n int, m *matrix.Dense[T]) (*Complex[T], error) {
	if n < 0 {
		return nil, chainErrorf(opNewFilled, ErrNegativeLength)
	}
	if m == nil {
		return nil, chainErrorf(opNewFilled, ErrNilMap)
	}
	cx := &Complex[T]{maps: make([]*matrix.Dense[T], n)}
	for i := range cx.maps {
		cx.maps[i] = m.Clone()
	}

	return cx, nil
}

// Len returns the number of maps.
func (cx *Complex[T]) Len() int { return len(cx.maps) }

// Reduced reports whether Reduce has run since the last modification.
func (cx *Complex[T]) Reduced() bool { return cx.reduced }

// At returns map i. The matrix stays owned by the complex: mutating it (or
// reducing it) directly bypasses the Reduced bookkeeping.
// Errors: ErrIndexOutOfRange.
func (cx *Complex[T]) At(i int) (*matrix.Dense[T], error) {
	if i < 0 || i >= len(cx.maps) {
		return nil, chainErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, len(cx.maps), ErrIndexOutOfRange))
	}

	return cx.maps[i], nil
}

// Set replaces map i with a copy of m and clears the reduced state.
// Errors: ErrIndexOutOfRange, ErrNilMap.
func (cx *Complex[T]) Set(i int, m *matrix.Dense[T]) error {
	if i < 0 || i >= len(cx.maps) {
		return chainErrorf(opSet, fmt.Errorf("index %d of %d: %w", i, len(cx.maps), ErrIndexOutOfRange))
	}
	if m == nil {
		return chainErrorf(opSet, ErrNilMap)
	}
	cx.maps[i] = m.Clone()
	cx.reduced = false

	return nil
}

// Clone deep-copies the complex, including every map and the reduced flag.
func (cx *Complex[T]) Clone() *Complex[T] {
	out := &Complex[T]{maps: make([]*matrix.Dense[T], len(cx.maps)), reduced: cx.reduced}
	for i, m := range cx.maps {
		out.maps[i] = m.Clone()
	}

	return out
}

// CheckHomology verifies the chain condition on the current entries: for
// every i ≥ 1, d_i · d_{i−1} must equal the zero matrix of shape
// d_i.Rows() × d_{i−1}.Cols().
//
// Returns false at the first violating pair. Adjacent maps whose shapes
// cannot be composed yield ErrDimensionMismatch (from the matrix package)
// wrapped with the pair index.
//
// Reduction rewrites entries, so call this before Reduce when it is used
// for validation.
//
// Complexity: O(Σ r_i*c_i*c_{i−1}).
func (cx *Complex[T]) CheckHomology() (bool, error) {
	for i := 1; i < len(cx.maps); i++ {
		p, err := matrix.Mul[T](cx.maps[i], cx.maps[i-1])
		if err != nil {
			return false, chainErrorf(opCheckHomology, fmt.Errorf("d%d·d%d: %w", i, i-1, err))
		}
		if !p.IsZero() {
			return false, nil
		}
	}

	return true, nil
}

// Reduce brings every map to echelon form in place, in index order.
// Maps are reduced independently.
func (cx *Complex[T]) Reduce() {
	for _, m := range cx.maps {
		m.Reduce()
	}
	cx.reduced = true
}

// ToStairCase is an alias for Reduce.
func (cx *Complex[T]) ToStairCase() { cx.Reduce() }

// Homology returns DimKernel(d_ind) − DimImage(d_{ind+1}), the homology
// dimension at position ind.
//
// Errors:
//   - ErrIndexOutOfRange unless 0 ≤ ind and ind+1 < Len().
//   - ErrNotReduced when Reduce has not run since the last Set.
func (cx *Complex[T]) Homology(ind int) (int, error) {
	if ind < 0 || ind+1 >= len(cx.maps) {
		return 0, chainErrorf(opHomology, fmt.Errorf("index %d of %d: %w", ind, len(cx.maps), ErrIndexOutOfRange))
	}
	if !cx.reduced {
		return 0, chainErrorf(opHomology, ErrNotReduced)
	}

	return cx.maps[ind].DimKernel() - cx.maps[ind+1].DimImage(), nil
}

// Betti returns Homology(i) for every i in [0, Len()−1).
// A complex with fewer than two maps yields an empty slice.
// Errors: ErrNotReduced.
func (cx *Complex[T]) Betti() ([]int, error) {
	if len(cx.maps) < 2 {
		return []int{}, nil
	}
	out := make([]int, len(cx.maps)-1)
	for i := range out {
		h, err := cx.Homology(i)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}

	return out, nil
}
