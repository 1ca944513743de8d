// SPDX-License-Identifier: MIT
// Ring-aware constructors. The recursive driver needs zero padding and
// identities built from r.Zero and r.One, since the Go zero value is not
// an element of every ring (a nil *big.Int, for one).

package matrix

import "github.com/katalvlaran/rank23/ring"

// NewZeros returns a rows×cols Dense filled with r.Zero().
// Unlike NewDense, the entries are r.Zero() rather than the Go zero value,
// which matters for rings whose Go zero value is not a valid element.
func NewZeros[E any](r ring.Ring[E], rows, cols int) (*Dense[E], error) {
	z, err := NewDense[E](rows, cols)
	if err != nil {
		return nil, err
	}
	zero := r.Zero()
	for i := range z.data {
		z.data[i] = zero
	}

	return z, nil
}

// NewIdentity returns I_n over r (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2).
func NewIdentity[E any](r ring.Ring[E], n int) (*Dense[E], error) {
	id, err := NewZeros(r, n, n)
	if err != nil {
		return nil, err
	}
	one := r.One()
	for i := 0; i < n; i++ {
		id.data[i*n+i] = one
	}

	return id, nil
}

// Embed returns an rows×cols Dense over r holding src in its top-left corner
// and r.Zero() elsewhere. It is the padding step of block algorithms.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrOutOfRange (src larger than the target).
func Embed[E any](r ring.Ring[E], src *Dense[E], rows, cols int) (*Dense[E], error) {
	if src == nil {
		return nil, matrixErrorf("Embed", ErrNilMatrix)
	}
	out, err := NewZeros(r, rows, cols)
	if err != nil {
		return nil, matrixErrorf("Embed", err)
	}
	if err = out.SetBlock(0, 0, src); err != nil {
		return nil, matrixErrorf("Embed", err)
	}

	return out, nil
}

// AsDense returns m itself when it is already a *Dense, otherwise a Dense copy.
// Errors: ErrNilMatrix, or the first At error of a foreign implementation.
func AsDense[E any](m Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	if d, ok := m.(*Dense[E]); ok {
		return d, nil
	}
	out, err := NewDense[E](m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("AsDense", err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
