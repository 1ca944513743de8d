// SPDX-License-Identifier: MIT

package rank23

import (
	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
)

// leafFunc multiplies two equal-size square blocks directly.
type leafFunc[E any] func(a, b *matrix.Dense[E]) (*matrix.Dense[E], error)

// MulRecursive multiplies two n×n matrices by applying the 3×3 scheme to
// 3×3 block partitions, recursing until blocks are at most LeafSize wide.
//
// Implementation:
//   - Stage 1: validate both inputs square and of equal size.
//   - Stage 2: n ≤ LeafSize → naive matrix.Mul.
//   - Stage 3: pad to the next multiple of 3 with zeros, cut into nine
//     k×k blocks, run MulRing over a ring whose elements are blocks, then
//     reassemble and crop back to n×n.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square or unequal sizes).
//
// Complexity:
//   - 23 block products per level instead of 27: O(n^log₃23) ≈ O(n^2.854)
//     multiplications once n is well above LeafSize.
func MulRecursive[T ring.Scalar](a, b matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	return mulRecursiveEntry(ring.Numeric[T]{}, a, b, func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return matrix.Mul[T](x, y)
	}, opts...)
}

// MulRecursiveRing is MulRecursive over r, with matrix.MulRing at the leaves.
func MulRecursiveRing[E any](r ring.Ring[E], a, b matrix.Matrix[E], opts ...Option) (*matrix.Dense[E], error) {
	if r == nil {
		return nil, rankErrorf(opMulRecursive, ring.ErrNilRing)
	}

	return mulRecursiveEntry(r, a, b, func(x, y *matrix.Dense[E]) (*matrix.Dense[E], error) {
		return matrix.MulRing(r, x, y)
	}, opts...)
}

func mulRecursiveEntry[E any](r ring.Ring[E], a, b matrix.Matrix[E], leaf leafFunc[E], opts ...Option) (*matrix.Dense[E], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, rankErrorf(opMulRecursive, err)
	}
	if err := matrix.ValidateSquare(b); err != nil {
		return nil, rankErrorf(opMulRecursive, err)
	}
	if a.Rows() != b.Rows() {
		return nil, rankErrorf(opMulRecursive, matrix.ErrDimensionMismatch)
	}
	da, err := matrix.AsDense(a)
	if err != nil {
		return nil, rankErrorf(opMulRecursive, err)
	}
	db, err := matrix.AsDense(b)
	if err != nil {
		return nil, rankErrorf(opMulRecursive, err)
	}

	o := gatherOptions(opts...)
	out, err := mulRecursive(r, da, db, o.leafSize, leaf)
	if err != nil {
		return nil, rankErrorf(opMulRecursive, err)
	}

	return out, nil
}

// mulRecursive assumes a and b are n×n Dense matrices.
func mulRecursive[E any](r ring.Ring[E], a, b *matrix.Dense[E], leafSize int, leaf leafFunc[E]) (*matrix.Dense[E], error) {
	n := a.Rows()
	if n <= leafSize {
		return leaf(a, b)
	}

	k := (n + matrix.Order - 1) / matrix.Order // block width
	p := k * matrix.Order                      // padded size
	var err error
	if p != n {
		if a, err = matrix.Embed(r, a, p, p); err != nil {
			return nil, err
		}
		if b, err = matrix.Embed(r, b, p, p); err != nil {
			return nil, err
		}
	}

	var ab, bb matrix.Mat3[*matrix.Dense[E]]
	for idx := range ab {
		r0, c0 := (idx/matrix.Order)*k, (idx%matrix.Order)*k
		if ab[idx], err = a.Block(r0, c0, k, k); err != nil {
			return nil, err
		}
		if bb[idx], err = b.Block(r0, c0, k, k); err != nil {
			return nil, err
		}
	}

	br := &blockRing[E]{r: r, k: k, leafSize: leafSize, leaf: leaf}
	cb := MulRing[*matrix.Dense[E]](br, ab, bb)
	if br.err != nil {
		return nil, br.err
	}

	out, err := matrix.NewDense[E](p, p)
	if err != nil {
		return nil, err
	}
	for idx, blk := range cb {
		if err = out.SetBlock((idx/matrix.Order)*k, (idx%matrix.Order)*k, blk); err != nil {
			return nil, err
		}
	}
	if p == n {
		return out, nil
	}

	return out.Block(0, 0, n, n)
}

// blockRing is the ring of k×k matrices over r, with a recursive Mul.
// Ring methods cannot return errors, so the first failure is kept in err
// and every later operation short-circuits to a zero block.
// Not safe for concurrent use; each recursion level owns its own.
type blockRing[E any] struct {
	r        ring.Ring[E]
	k        int
	leafSize int
	leaf     leafFunc[E]
	err      error
}

func (br *blockRing[E]) Zero() *matrix.Dense[E] {
	z, err := matrix.NewZeros(br.r, br.k, br.k)
	br.fail(err)
	return z
}

func (br *blockRing[E]) One() *matrix.Dense[E] {
	id, err := matrix.NewIdentity(br.r, br.k)
	br.fail(err)
	return id
}

func (br *blockRing[E]) Add(a, b *matrix.Dense[E]) *matrix.Dense[E] {
	if br.err != nil {
		return br.Zero()
	}
	out, err := matrix.Add[E](br.r, a, b)
	return br.result(out, err)
}

func (br *blockRing[E]) Sub(a, b *matrix.Dense[E]) *matrix.Dense[E] {
	if br.err != nil {
		return br.Zero()
	}
	out, err := matrix.Sub[E](br.r, a, b)
	return br.result(out, err)
}

func (br *blockRing[E]) Neg(a *matrix.Dense[E]) *matrix.Dense[E] {
	return br.Sub(br.Zero(), a)
}

func (br *blockRing[E]) Mul(a, b *matrix.Dense[E]) *matrix.Dense[E] {
	if br.err != nil {
		return br.Zero()
	}
	out, err := mulRecursive(br.r, a, b, br.leafSize, br.leaf)
	return br.result(out, err)
}

func (br *blockRing[E]) Equal(a, b *matrix.Dense[E]) bool {
	x, y := a.Raw(), b.Raw()
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !br.r.Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}

func (br *blockRing[E]) fail(err error) {
	if err != nil && br.err == nil {
		br.err = err
	}
}

func (br *blockRing[E]) result(out *matrix.Dense[E], err error) *matrix.Dense[E] {
	if err != nil {
		br.fail(err)
		return br.Zero()
	}
	return out
}
