// SPDX-License-Identifier: MIT

package ring

// Ring is the element capability required by exact elimination.
//
// Contract:
//   - Zero is the additive identity and the value of a freshly allocated cell.
//   - One is the multiplicative identity (the initial Bareiss divisor).
//   - Quo(a, b) must be exact whenever it is called by the elimination kernel;
//     b is never Zero there.
//   - Equal must be an equivalence relation; IsZero(a) ≡ Equal(a, Zero()).
//
// Implementations are expected to be small immutable values (often empty
// structs) so that copying a Ring is free.
type Ring[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T
	Equal(a, b T) bool
	IsZero(a T) bool
}

// Integer lists the builtin integer kinds usable with Int.
// Only signed kinds qualify: Bareiss numerators go negative, and unsigned
// wraparound would make Quo inexact. Use Mod for unsigned residues.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Floating lists the builtin floating-point kinds usable with Float.
type Floating interface {
	~float32 | ~float64
}

// QuoChecked divides a by b in rg, reporting ErrDivisionByZero instead of
// delegating a zero divisor to the ring.
func QuoChecked[T any](rg Ring[T], a, b T) (T, error) {
	if rg.IsZero(b) {
		return rg.Zero(), ErrDivisionByZero
	}

	return rg.Quo(a, b), nil
}

// Sum folds xs with rg.Add starting from rg.Zero().
func Sum[T any](rg Ring[T], xs ...T) T {
	acc := rg.Zero()
	for _, x := range xs {
		acc = rg.Add(acc, x)
	}

	return acc
}
