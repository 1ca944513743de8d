// SPDX-License-Identifier: MIT

package rank23

import (
	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
)

// MulRing returns a·b over r with the same coefficients as Mul.
// It performs exactly 23 r.Mul, 60 r.Add/r.Sub and no r.Neg calls.
// Operand order inside each product is preserved (A-side factor left),
// so r need not be commutative: 3×3 block matrices are valid elements.
// Each Mul result is passed through untouched, so a pure r keeps a and b
// unchanged.
func MulRing[E any](r ring.Ring[E], a, b matrix.Mat3[E]) matrix.Mat3[E] {
	s := preprocessRing(r, &a, &b)
	p := multiplyRing(r, &a, &b, &s)

	return aggregateRing(r, &p)
}

func preprocessRing[E any](r ring.Ring[E], a, b *matrix.Mat3[E]) terms[E] {
	var s terms[E]

	s.t0 = r.Sub(a[0], a[3])
	s.t1 = r.Add(a[4], a[5])
	s.t2 = r.Add(a[6], a[8])
	s.t3 = r.Add(a[1], a[2])
	s.t4 = r.Sub(a[7], s.t1)
	s.t5 = r.Add(s.t0, s.t2)

	s.u0 = r.Sub(b[0], b[2])
	s.u1 = r.Sub(b[4], b[7])
	s.u2 = r.Add(b[1], s.u0)
	s.u3n = r.Sub(b[8], b[5])
	s.u4n = r.Sub(s.u3n, b[6])
	s.u5 = r.Add(s.u1, s.u2)

	return s
}

func multiplyRing[E any](r ring.Ring[E], a, b *matrix.Mat3[E], s *terms[E]) products[E] {
	var m products[E]

	m[0] = r.Mul(s.t3, b[7])
	m[1] = r.Mul(r.Add(r.Sub(a[3], a[4]), a[7]), s.u1)
	m[2] = r.Mul(r.Sub(a[1], a[3]), s.u5)
	m[3] = r.Mul(s.t0, s.u0)
	m[4] = r.Mul(a[5], s.u3n)
	m[5] = r.Mul(r.Add(a[8], s.t4), b[7])
	m[6] = r.Mul(a[8], r.Sub(r.Sub(b[2], b[7]), b[8]))
	m[7] = r.Mul(s.t4, r.Add(b[5], b[7]))
	m[8] = r.Mul(a[7], b[3])
	m[9] = r.Mul(r.Add(a[1], a[5]), s.u4n)
	m[10] = r.Mul(s.t5, r.Sub(b[6], b[2]))
	m[11] = r.Mul(a[6], b[1])
	m[12] = r.Mul(r.Sub(r.Sub(a[5], a[2]), s.t5), b[6])
	m[13] = r.Mul(r.Sub(a[1], a[0]), s.u2)
	m[14] = r.Mul(a[3], b[2])
	m[15] = r.Mul(r.Add(a[6], s.t0), r.Sub(b[0], b[6]))
	m[16] = r.Mul(a[7], r.Add(b[4], b[5]))
	m[17] = r.Mul(s.t3, r.Sub(b[8], b[6]))
	m[18] = r.Mul(s.t2, b[2])
	m[19] = r.Mul(a[1], r.Add(r.Add(b[3], s.u4n), s.u5))
	m[20] = r.Mul(r.Sub(a[4], a[1]), b[3])
	m[21] = r.Mul(s.t1, b[5])
	m[22] = r.Mul(a[3], r.Add(b[1], s.u1))

	return m
}

func aggregateRing[E any](r ring.Ring[E], m *products[E]) matrix.Mat3[E] {
	v0 := r.Add(m[4], m[14])
	v1 := r.Add(m[2], m[22])
	v2 := r.Add(m[7], m[21])
	v3 := r.Sub(m[9], v0)
	v4 := r.Add(m[10], m[18])
	v5 := r.Sub(m[3], v1)
	v6 := r.Sub(m[5], v2)
	v7 := r.Add(m[12], v3)
	v8 := r.Add(v4, v7)

	return matrix.Mat3[E]{
		r.Sub(r.Add(m[19], v5), v8),
		r.Sub(r.Sub(m[0], m[13]), v5),
		r.Sub(m[17], v8),
		r.Sub(r.Sub(r.Add(m[19], m[20]), v1), v3),
		r.Sub(r.Sub(r.Add(m[16], m[22]), m[1]), v2),
		r.Add(m[21], v0),
		r.Sub(r.Add(r.Add(m[8], m[15]), v4), m[3]),
		r.Add(r.Add(m[16], v6), m[11]),
		r.Sub(r.Sub(m[18], m[6]), v6),
	}
}
