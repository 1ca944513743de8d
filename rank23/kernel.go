// SPDX-License-Identifier: MIT

package rank23

import (
	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
)

// terms holds the preprocessed linear combinations of one call.
// t* combine entries of A, u* combine entries of B. u3n and u4n are the
// negations of u3 = B5-B8 and u4 = B6+u3; storing them negated lets every
// product below be formed without a unary minus.
type terms[T any] struct {
	t0, t1, t2, t3, t4, t5 T
	u0, u1, u2, u3n, u4n, u5 T
}

// products holds m0..m22. m11, m14 and m18 hold the negated scheme
// products (A6·B1, A3·B2 and t2·B2); aggregate absorbs the sign.
type products[T any] [Multiplications]T

// Mul returns a·b using 23 multiplications and 60 additions/subtractions.
//
// Implementation:
//   - Stage 1 (preprocess): 6 combinations of a, 6 of b.
//   - Stage 2 (multiply): 23 mutually independent products.
//   - Stage 3 (aggregate): 9 intermediate sums, then the 9 entries of c.
//
// Behavior highlights:
//   - Total and pure: the 3×3 shape is guaranteed by the type, inputs are
//     copied on the call, nothing is cached between calls.
//   - Exact for integer types (signed overflow wraps exactly like the naive
//     product, so both agree modulo 2ⁿ). For floats the summation order
//     differs from Naive3, so results agree only up to rounding.
//
// Complexity:
//   - Time O(1): 23 mul + 60 add/sub. Space O(1), no heap allocation.
func Mul[T ring.Scalar](a, b matrix.Mat3[T]) matrix.Mat3[T] {
	s := preprocess(&a, &b)
	p := multiply(&a, &b, &s)

	return aggregate(&p)
}

// preprocess computes t0..t5 and u0..u5 (12 add/sub).
func preprocess[T ring.Scalar](a, b *matrix.Mat3[T]) terms[T] {
	var s terms[T]

	s.t0 = a[0] - a[3]
	s.t1 = a[4] + a[5]
	s.t2 = a[6] + a[8]
	s.t3 = a[1] + a[2]
	s.t4 = a[7] - s.t1
	s.t5 = s.t0 + s.t2

	s.u0 = b[0] - b[2]
	s.u1 = b[4] - b[7]
	s.u2 = b[1] + s.u0
	s.u3n = b[8] - b[5]
	s.u4n = s.u3n - b[6]
	s.u5 = s.u1 + s.u2

	return s
}

// multiply forms the 23 products (23 mul, 20 add/sub inside the factors).
// The A-side factor is always on the left.
func multiply[T ring.Scalar](a, b *matrix.Mat3[T], s *terms[T]) products[T] {
	var m products[T]

	m[0] = s.t3 * b[7]
	m[1] = (a[3] - a[4] + a[7]) * s.u1
	m[2] = (a[1] - a[3]) * s.u5
	m[3] = s.t0 * s.u0
	m[4] = a[5] * s.u3n
	m[5] = (a[8] + s.t4) * b[7]
	m[6] = a[8] * (b[2] - b[7] - b[8])
	m[7] = s.t4 * (b[5] + b[7])
	m[8] = a[7] * b[3]
	m[9] = (a[1] + a[5]) * s.u4n
	m[10] = s.t5 * (b[6] - b[2])
	m[11] = a[6] * b[1]
	m[12] = (a[5] - a[2] - s.t5) * b[6]
	m[13] = (a[1] - a[0]) * s.u2
	m[14] = a[3] * b[2]
	m[15] = (a[6] + s.t0) * (b[0] - b[6])
	m[16] = a[7] * (b[4] + b[5])
	m[17] = s.t3 * (b[8] - b[6])
	m[18] = s.t2 * b[2]
	m[19] = a[1] * (b[3] + s.u4n + s.u5)
	m[20] = (a[4] - a[1]) * b[3]
	m[21] = s.t1 * b[5]
	m[22] = a[3] * (b[1] + s.u1)

	return m
}

// aggregate folds the products into c (28 add/sub). The v chain must be
// evaluated in order: v3 needs v0, v5 needs v1, v6 needs v2, v7 needs v3,
// v8 needs v4 and v7.
func aggregate[T ring.Scalar](m *products[T]) matrix.Mat3[T] {
	v0 := m[4] + m[14]
	v1 := m[2] + m[22]
	v2 := m[7] + m[21]
	v3 := m[9] - v0
	v4 := m[10] + m[18]
	v5 := m[3] - v1
	v6 := m[5] - v2
	v7 := m[12] + v3
	v8 := v4 + v7

	return matrix.Mat3[T]{
		m[19] + v5 - v8,
		m[0] - m[13] - v5,
		m[17] - v8,
		m[19] + m[20] - v1 - v3,
		m[16] + m[22] - m[1] - v2,
		m[21] + v0,
		m[8] + m[15] + v4 - m[3],
		m[16] + v6 + m[11],
		m[18] - m[6] - v6,
	}
}
