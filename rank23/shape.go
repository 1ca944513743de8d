// SPDX-License-Identifier: MIT
// Package rank23 — shape-checked entry points.
//
// Purpose:
//   - Accept untyped layouts (flat slices, nested rows, Matrix values) and
//     reject malformed ones with *matrix.ShapeError before any arithmetic.
//
// Error priority: a is validated before b; the first violation is returned.

package rank23

import (
	"fmt"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
)

// Operation tags used in shape errors and wrappers.
const (
	opMulSlice     = "MulSlice"
	opMulSliceRing = "MulSliceRing"
	opMulRows      = "MulRows"
	opMulDense     = "MulDense"
	opMulBatch     = "MulBatch"
	opMulRecursive = "MulRecursive"
)

// rankErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func rankErrorf(tag string, err error) error {
	return fmt.Errorf("rank23: %s: %w", tag, err)
}

// MulSlice multiplies two flat row-major 3×3 matrices.
// Errors: *matrix.ShapeError (matches matrix.ErrBadShape) when either input
// does not hold exactly 9 elements. No arithmetic is performed in that case.
func MulSlice[T ring.Scalar](a, b []T) (matrix.Mat3[T], error) {
	ma, mb, err := fromSlices(opMulSlice, a, b)
	if err != nil {
		return matrix.Mat3[T]{}, err
	}

	return Mul(ma, mb), nil
}

// MulSliceRing is MulSlice over an arbitrary ring.
// Errors: ring.ErrNilRing, *matrix.ShapeError.
func MulSliceRing[E any](r ring.Ring[E], a, b []E) (matrix.Mat3[E], error) {
	if r == nil {
		return matrix.Mat3[E]{}, rankErrorf(opMulSliceRing, ring.ErrNilRing)
	}
	ma, mb, err := fromSlices(opMulSliceRing, a, b)
	if err != nil {
		return matrix.Mat3[E]{}, err
	}

	return MulRing(r, ma, mb), nil
}

// MulRows multiplies two matrices given as three rows of three entries.
// Errors: *matrix.ShapeError for a wrong row count or a ragged row.
func MulRows[T ring.Scalar](a, b [][]T) (matrix.Mat3[T], error) {
	if err := matrix.ValidateRows3x3(a, opMulRows, "a"); err != nil {
		return matrix.Mat3[T]{}, err
	}
	if err := matrix.ValidateRows3x3(b, opMulRows, "b"); err != nil {
		return matrix.Mat3[T]{}, err
	}
	ma, _ := matrix.FromRows(a) // validated above
	mb, _ := matrix.FromRows(b)

	return Mul(ma, mb), nil
}

// MulDense multiplies two 3×3 Matrix values into a new *matrix.Dense.
// Errors: matrix.ErrNilMatrix, *matrix.ShapeError for any other shape.
func MulDense[T ring.Scalar](a, b matrix.Matrix[T]) (*matrix.Dense[T], error) {
	if err := matrix.Validate3x3(a, opMulDense, "a"); err != nil {
		return nil, err
	}
	if err := matrix.Validate3x3(b, opMulDense, "b"); err != nil {
		return nil, err
	}
	ma, err := matrix.FromMatrix(a)
	if err != nil {
		return nil, rankErrorf(opMulDense, err)
	}
	mb, err := matrix.FromMatrix(b)
	if err != nil {
		return nil, rankErrorf(opMulDense, err)
	}

	return Mul(ma, mb).Dense(), nil
}

// fromSlices validates both flat inputs, a first, then copies them.
func fromSlices[E any](op string, a, b []E) (ma, mb matrix.Mat3[E], err error) {
	if err = matrix.ValidateLen(a, op, "a"); err != nil {
		return ma, mb, err
	}
	if err = matrix.ValidateLen(b, op, "b"); err != nil {
		return ma, mb, err
	}
	copy(ma[:], a)
	copy(mb[:], b)

	return ma, mb, nil
}
