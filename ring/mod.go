// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/bits"

	"modernc.org/mathutil"
)

// millerRabinBases make the Miller–Rabin test deterministic for every n < 3.3·10²⁴,
// which covers the whole uint64 range.
var millerRabinBases = [...]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// Mod is the ring of residues Z/mZ. Elements are uint64 values in [0, m).
//
// Every operation is exact for any 64-bit modulus: sums use a carry-aware
// add and products are formed at 128 bits before reduction.
type Mod struct {
	m uint64
}

// NewMod returns Z/mZ or ErrZeroModulus when m == 0.
// m == 1 is accepted and yields the zero ring, in which 0 == 1.
func NewMod(m uint64) (Mod, error) {
	if m == 0 {
		return Mod{}, ringErrorf("NewMod", ErrZeroModulus)
	}

	return Mod{m: m}, nil
}

// MustMod is NewMod for constant moduli; it panics on m == 0.
func MustMod(m uint64) Mod {
	r, err := NewMod(m)
	if err != nil {
		panic(err)
	}

	return r
}

// Modulus returns m.
func (r Mod) Modulus() uint64 { return r.m }

// Elem maps a signed integer to its canonical residue in [0, m).
func (r Mod) Elem(v int64) uint64 {
	if v >= 0 {
		return uint64(v) % r.m
	}
	// -(v+1) cannot overflow, even for math.MinInt64.
	x := uint64(-(v + 1)) % r.m

	return r.m - 1 - x
}

// Signed returns the representative of a in (-m/2, m/2], handy for
// printing small negative results.
func (r Mod) Signed(a uint64) int64 {
	if a > r.m/2 {
		return -int64(r.m - a)
	}

	return int64(a)
}

// Zero returns 0.
func (r Mod) Zero() uint64 { return 0 }

// One returns 1 mod m (0 in the zero ring).
func (r Mod) One() uint64 { return 1 % r.m }

// Add returns (a + b) mod m. Operands must already be reduced.
func (r Mod) Add(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= r.m {
		sum -= r.m
	}

	return sum
}

// Sub returns (a - b) mod m. Operands must already be reduced.
func (r Mod) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}

	return a + (r.m - b)
}

// Neg returns -a mod m.
func (r Mod) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return r.m - a
}

// Mul returns (a * b) mod m using the full 128-bit product.
func (r Mod) Mul(a, b uint64) uint64 {
	hi, lo := mathutil.MulUint128_64(a, b)

	return bits.Rem64(hi, lo, r.m)
}

// Equal reports a == b for reduced operands.
func (r Mod) Equal(a, b uint64) bool { return a == b }

// IsField reports whether m is prime, i.e. whether Z/mZ is a field.
func (r Mod) IsField() bool {
	n := r.m
	if n < 2 {
		return false
	}
	for _, p := range millerRabinBases {
		if n == uint64(p) {
			return true
		}
		if n%uint64(p) == 0 {
			return false
		}
	}
	// n > 37 here, so every base is a valid witness candidate.
	for _, a := range millerRabinBases {
		if !mathutil.ProbablyPrimeUint64_32(n, a) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (r Mod) String() string { return fmt.Sprintf("Z/%dZ", r.m) }
