// Package rank23 multiplies 3×3 matrices with 23 scalar multiplications
// and 60 additions/subtractions instead of the naive 27 and 18.
//
// 🚀 What is it?
//
//	A fixed bilinear algorithm of rank 23. Every call runs three phases:
//	  • preprocess: 6 linear combinations of A and 6 of B
//	  • multiply:   23 mutually independent products
//	  • aggregate:  9 chained sums, then the 9 entries of C
//	The coefficients are constants of the scheme and are written out
//	literally; nothing is derived or cached at runtime.
//
// ✨ Key features:
//   - Mul: operator-generic over every Go integer, float and complex type
//   - MulRing: the same coefficients over any ring.Ring (residues mod m,
//     polynomials, big integers, or non-commutative blocks)
//   - MulSlice / MulRows / MulDense: shape-checked entry points that return
//     *matrix.ShapeError before doing any arithmetic
//   - MulBatch: many independent products across bounded workers
//   - MulRecursive: the scheme applied to 3×3 block partitions of n×n matrices
//   - Count: the measured operation count (23 mul, 60 add/sub, 0 neg)
//
// ⚙️ Usage:
//
//	a := matrix.Mat3[int64]{1, 2, 3, 4, 5, 6, 7, 8, 9}
//	c := rank23.Mul(a, matrix.Identity3[int64]()) // c == a
//
//	r := ring.MustMod(7)
//	cm := rank23.MulRing[uint64](r, matrix.Map3(a, r.Elem), matrix.Identity3Ring[uint64](r))
//
// Floating point:
//
//	Over exact rings the result equals the naive product entry for entry.
//	Over float32/float64 the sums are formed in a different order than the
//	naive product, so results agree only within rounding error, and
//	cancellation between large intermediate terms can lose more precision
//	than the naive method. Compare with matrix.AllClose, not ==.
//
// Concurrency:
//
//	All functions are pure and hold no package state; they may be called
//	concurrently on any inputs.
package rank23
