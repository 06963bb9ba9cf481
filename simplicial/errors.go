// SPDX-License-Identifier: MIT

package simplicial

import "errors"

var (
	// ErrEmptySimplex indicates a simplex with no vertices.
	ErrEmptySimplex = errors.New("simplicial: empty simplex")

	// ErrDuplicateVertex indicates a vertex repeated inside one simplex.
	ErrDuplicateVertex = errors.New("simplicial: duplicate vertex in simplex")

	// ErrInvalidVertex indicates a vertex name containing a NUL byte.
	ErrInvalidVertex = errors.New("simplicial: vertex name contains NUL")

	// ErrMissingFace indicates a simplex whose face is not part of the complex
	// (strict mode; see WithClosure).
	ErrMissingFace = errors.New("simplicial: missing face")

	// ErrDimension indicates a dimension outside [0, Dim()+1].
	ErrDimension = errors.New("simplicial: dimension out of range")
)
