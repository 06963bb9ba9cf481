// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Mod is the field Z/pZ for a prime p, with elements stored as uint64 in [0, p).
//
// Every nonzero element is invertible, so Bareiss division is always exact
// here; this makes Mod the ring of choice for homology with field
// coefficients (e.g. p = 2 for mod-2 Betti numbers).
//
// Inputs to the arithmetic methods are assumed already reduced; use Reduce
// (or FromInt) to bring arbitrary values into range. The zero Mod is not a
// valid field; build one with NewMod.
type Mod struct {
	p uint64
}

var _ Ring[uint64] = Mod{}

// NewMod returns the field of integers modulo p.
// Errors: ErrModulus when p < 2 or p is not prime.
func NewMod(p uint64) (Mod, error) {
	if !isPrime(p) {
		return Mod{}, fmt.Errorf("NewMod(%d): %w", p, ErrModulus)
	}

	return Mod{p: p}, nil
}

// Modulus returns p.
func (m Mod) Modulus() uint64 { return m.p }

// Reduce maps any uint64 into [0, p).
func (m Mod) Reduce(x uint64) uint64 { return x % m.p }

// FromInt maps a signed integer to its residue in [0, p).
func (m Mod) FromInt(x int64) uint64 {
	if x >= 0 {
		return uint64(x) % m.p
	}
	r := uint64(-(x + 1)) % m.p // avoids overflow on math.MinInt64

	return m.p - 1 - r
}

// Signed returns the representative of x in (−p/2, p/2], handy for printing.
func (m Mod) Signed(x uint64) int64 {
	if x > m.p/2 {
		return -int64(m.p - x)
	}

	return int64(x)
}

func (m Mod) Zero() uint64 { return 0 }
func (m Mod) One() uint64  { return 1 % m.p }

func (m Mod) Add(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= m.p {
		s -= m.p
	}

	return s
}

func (m Mod) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}

	return m.p - (b - a)
}

// Mul uses a 128-bit intermediate so any 64-bit prime is safe.
func (m Mod) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m.p, lo, m.p)

	return rem
}

// Quo multiplies a by the inverse of b. b must be nonzero.
func (m Mod) Quo(a, b uint64) uint64 { return m.Mul(a, m.Inverse(b)) }

// Inverse returns b⁻¹ via the extended Euclidean algorithm; Inverse(0) is 0.
func (m Mod) Inverse(b uint64) uint64 {
	if b == 0 {
		return 0
	}
	// Track coefficients modulo p to stay in unsigned arithmetic.
	var (
		r0, r1 = m.p, b % m.p
		t0, t1 = uint64(0), uint64(1)
	)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, m.Sub(t0, m.Mul(q%m.p, t1))
	}

	return t0
}

func (m Mod) Equal(a, b uint64) bool { return a == b }
func (m Mod) IsZero(a uint64) bool   { return a == 0 }

// isPrime reports primality; big.Int.ProbablyPrime(0) is exact below 2⁶⁴.
func isPrime(p uint64) bool {
	if p < 2 {
		return false
	}

	return new(big.Int).SetUint64(p).ProbablyPrime(0)
}
