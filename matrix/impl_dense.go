// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Swap* return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Route every arithmetic operation through the matrix's ring.Ring[T].
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot kernels (see impl_linear_algebra.go, impl_echelon.go).
//   - Clone before Reduce when the original numeric content is still needed.
//   - Zero-area shapes (0×n, n×0) are legal and behave as identities for loops.
//
// Complexity quicksheet:
//   - New/NewDiag/FromRows: O(r*c); At/Set: O(1); Clone: O(r*c); SwapRows: O(c); SwapCols: O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homology/ring"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
	ctxSwapCols = "SwapCols" // method tag used in error wrappers
	ctxNew      = "New"      // ctor tag
	ctxNewDiag  = "NewDiag"  // ctor tag
	ctxFromRows = "FromRows" // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over ring elements.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j),
//     owned exclusively by this value (Clone deep-copies).
//   - rg supplies Zero/One and the arithmetic used by kernels.
type Dense[T any] struct {
	r, c int          // row and column counts (>=0)
	data []T          // contiguous row-major storage (len == r*c)
	rg   ring.Ring[T] // element arithmetic
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// New creates an rows×cols matrix filled with rg.Zero().
//
// Implementation:
//   - Stage 1: validate rg != nil and rows,cols >= 0.
//   - Stage 2: allocate the flat buffer and fill it with the ring's zero.
//
// Behavior highlights:
//   - 0×0, 0×n and n×0 are legal and allocate an empty buffer.
//   - The zero is written explicitly: a ring's Zero need not be T's zero value.
//
// Errors:
//   - ErrNilRing, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rg ring.Ring[T], rows, cols int) (*Dense[T], error) {
	m, err := newDense(rg, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}

	return m, nil
}

// NewDiag creates an rows×cols zero matrix with diag written on the main
// diagonal (min(rows, cols) cells). NewDiag(rg, n, n, rg.One()) is I_n.
//
// Errors:
//   - ErrNilRing, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDiag[T any](rg ring.Ring[T], rows, cols int, diag T) (*Dense[T], error) {
	m, err := newDense(rg, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDiag, rows, cols, err)
	}
	n := min(rows, cols)
	for k := 0; k < n; k++ { // fixed k order; single write per diagonal cell
		m.data[k*cols+k] = diag
	}

	return m, nil
}

// FromRows builds a matrix from a nested row literal.
//
// Implementation:
//   - Stage 1: width is len(rows[0]); an empty outer slice yields 0×0.
//   - Stage 2: every row must have exactly that width, else ErrRaggedInput
//     naming the first offending row.
//   - Stage 3: copy values row by row (the input is never aliased).
//
// Errors:
//   - ErrNilRing, ErrRaggedInput.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - FromRows(ring.Int[int]{}, [][]int{{5, 6}, {7, -8}}) infers T from the literal.
func FromRows[T any](rg ring.Ring[T], rows [][]T) (*Dense[T], error) {
	if rg == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrNilRing)
	}
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for i := 1; i < h; i++ {
		if len(rows[i]) != w {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), w, ErrRaggedInput)
		}
	}

	m := &Dense[T]{r: h, c: w, data: make([]T, h*w), rg: rg}
	for i := 0; i < h; i++ {
		copy(m.data[i*w:(i+1)*w], rows[i])
	}

	return m, nil
}

// newDense is the shared allocation path for New/NewDiag.
func newDense[T any](rg ring.Ring[T], rows, cols int) (*Dense[T], error) {
	if rg == nil {
		return nil, ErrNilRing
	}
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]T, rows*cols)
	zero := rg.Zero()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf, rg: rg}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Ring returns the element arithmetic of m.
func (m *Dense[T]) Ring() ring.Ring[T] { return m.rg }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the zero of the ring is returned with the error.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		if m.rg != nil {
			zero = m.rg.Zero()
		}

		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same ring).
// Mutations of the clone never reach the original and vice versa.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{r: m.r, c: m.c, data: cp, rg: m.rg}
}

// Equal reports whether other has the same shape and element-wise equal
// values under m's ring. A nil other is never equal.
//
// Determinism:
//   - Fixed i→j scan; stops at the first difference.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Equal(other Matrix[T]) bool {
	if isNil(other) || other.Rows() != m.r || other.Cols() != m.c {
		return false
	}
	// Fast path: flat walk over both buffers.
	if od, ok := other.(*Dense[T]); ok {
		for k := range m.data {
			if !m.rg.Equal(m.data[k], od.data[k]) {
				return false
			}
		}

		return true
	}
	// Fallback: interface reads in i→j order.
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || !m.rg.Equal(m.data[i*m.c+j], v) {
				return false
			}
		}
	}

	return true
}

// IsZero reports whether every element equals the ring's zero.
// Zero-area matrices are trivially zero.
// Complexity: O(r*c).
func (m *Dense[T]) IsZero() bool {
	for _, v := range m.data {
		if !m.rg.IsZero(v) {
			return false
		}
	}

	return true
}

// SwapRows exchanges rows i and j in place; i == j is a no-op.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i != j {
		m.swapRows(i, j)
	}

	return nil
}

// swapRows is the unchecked kernel used by SwapRows and the elimination loop.
func (m *Dense[T]) swapRows(i, j int) {
	a, b := i*m.c, j*m.c
	for t := 0; t < m.c; t++ {
		m.data[a+t], m.data[b+t] = m.data[b+t], m.data[a+t]
	}
}

// SwapCols exchanges columns i and j in place; i == j is a no-op.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense[T]) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return denseErrorf(ctxSwapCols, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	var base int
	for t := 0; t < m.r; t++ {
		base = t * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}

// String renders matrix rows as lines with comma-separated values ("%v").
// Intended for logs and the CLI; not for hot paths.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
