// SPDX-License-Identifier: MIT

package ring

import "math"

// Float is the Ring of a builtin floating-point kind.
//
// With Eps == 0 (the zero value) equality is exact ==, which mirrors integer
// behavior and keeps reductions of integral float inputs reproducible.
// With Eps > 0, Equal and IsZero accept |a−b| ≤ Eps. This changes which
// entries the elimination kernel treats as pivots and is therefore opt-in.
// No rounding-error analysis is provided in either mode.
type Float[T Floating] struct {
	Eps T // absolute tolerance for Equal/IsZero; 0 means exact comparison
}

// NewFloat returns a Float ring with tolerance eps.
// Errors: ErrNegativeEpsilon when eps < 0 or eps is NaN/Inf.
func NewFloat[T Floating](eps T) (Float[T], error) {
	e := float64(eps)
	if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
		return Float[T]{}, ErrNegativeEpsilon
	}

	return Float[T]{Eps: eps}, nil
}

var _ Ring[float64] = Float[float64]{}

func (Float[T]) Zero() T      { return 0 }
func (Float[T]) One() T       { return 1 }
func (Float[T]) Add(a, b T) T { return a + b }
func (Float[T]) Sub(a, b T) T { return a - b }
func (Float[T]) Mul(a, b T) T { return a * b }
func (Float[T]) Quo(a, b T) T { return a / b }

// Equal reports a == b, or |a−b| ≤ Eps when a tolerance is configured.
// A non-positive Eps (including one set directly on the struct) means exact.
func (f Float[T]) Equal(a, b T) bool {
	if !(f.Eps > 0) {
		return a == b
	}
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= f.Eps
}

// IsZero is Equal(a, 0).
func (f Float[T]) IsZero(a T) bool { return f.Equal(a, 0) }
