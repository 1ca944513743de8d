// SPDX-License-Identifier: MIT

package ring

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// BigInt is the ring of integers with arbitrary precision.
// Elements are never mutated; every operation allocates its result, so a
// *big.Int may safely appear in several products at once. Nil operands
// are treated as zero.
type BigInt struct{}

// Zero returns a new 0.
func (BigInt) Zero() *big.Int { return new(big.Int) }

// One returns a new 1.
func (BigInt) One() *big.Int { return big.NewInt(1) }

// Add returns a + b.
func (BigInt) Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(orZero(a), orZero(b))
}

// Sub returns a - b.
func (BigInt) Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(orZero(a), orZero(b))
}

// Neg returns -a.
func (BigInt) Neg(a *big.Int) *big.Int {
	return new(big.Int).Neg(orZero(a))
}

// Mul returns a * b. bigfft switches to FFT multiplication once both
// operands exceed ~1800 words and defers to math/big below that.
func (BigInt) Mul(a, b *big.Int) *big.Int {
	return bigfft.Mul(orZero(a), orZero(b))
}

// Equal reports a == b.
func (BigInt) Equal(a, b *big.Int) bool {
	return orZero(a).Cmp(orZero(b)) == 0
}

var bigZero = new(big.Int)

// orZero substitutes a shared read-only zero for nil.
func orZero(x *big.Int) *big.Int {
	if x == nil {
		return bigZero
	}

	return x
}
