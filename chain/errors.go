// SPDX-License-Identifier: MIT

package chain

import "errors"

var (
	// ErrIndexOutOfRange is returned for a map index outside [0, Len()) or a
	// homology index without a following map.
	ErrIndexOutOfRange = errors.New("chain: index out of range")

	// ErrNotReduced is returned by Homology/Betti before Reduce has run.
	ErrNotReduced = errors.New("chain: complex is not reduced")

	// ErrNilMap indicates a nil matrix was supplied as a map.
	ErrNilMap = errors.New("chain: nil map")

	// ErrNegativeLength is returned by NewFilled for n < 0.
	ErrNegativeLength = errors.New("chain: length must be >= 0")
)
