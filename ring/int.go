// SPDX-License-Identifier: MIT

package ring

// Int is the Ring of a builtin signed integer kind, using Go operators directly.
// Quo truncates toward zero; Bareiss elimination only ever divides exactly.
type Int[T Integer] struct{}

// Compile-time conformance.
var (
	_ Ring[int]   = Int[int]{}
	_ Ring[int64] = Int[int64]{}
)

func (Int[T]) Zero() T           { return 0 }
func (Int[T]) One() T            { return 1 }
func (Int[T]) Add(a, b T) T      { return a + b }
func (Int[T]) Sub(a, b T) T      { return a - b }
func (Int[T]) Mul(a, b T) T      { return a * b }
func (Int[T]) Quo(a, b T) T      { return a / b }
func (Int[T]) Equal(a, b T) bool { return a == b }
func (Int[T]) IsZero(a T) bool   { return a == 0 }
