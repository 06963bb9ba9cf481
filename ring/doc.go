// SPDX-License-Identifier: MIT

// Package ring describes the arithmetic an element type must offer to be
// reduced exactly by the matrix package.
//
// Go has no operator overloading, so the element capability is expressed as a
// separate value implementing Ring[T]. Matrices carry their Ring and route every
// +, −, ×, exact ÷ and equality test through it.
//
// Stock rings:
//
//	Int[T]   — builtin signed integer kinds (int, int8, ..., int64); the canonical exact ring.
//	Float[T] — float32/float64; exact comparison by default, optional tolerance.
//	Mod      — integers modulo a prime p (a finite field), division via inverse.
//
// Exactness of Quo is a precondition of the ring, not something callers can
// verify: Int[T] truncates when the quotient is not integral, Float[T] rounds.
package ring
