// SPDX-License-Identifier: MIT

package ring

import "errors"

var (
	// ErrModulus is returned by NewMod for a modulus that cannot define a field (p < 2 or composite).
	ErrModulus = errors.New("ring: modulus must be a prime >= 2")

	// ErrDivisionByZero is returned by checked division helpers when the divisor is zero.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrNegativeEpsilon is returned by NewFloat for a negative or NaN tolerance.
	ErrNegativeEpsilon = errors.New("ring: epsilon must be finite and >= 0")
)
