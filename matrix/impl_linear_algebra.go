// SPDX-License-Identifier: MIT
// Package matrix provides the reference arithmetic that fast kernels are
// checked against: element-wise addition and subtraction, the naive
// triple-loop product over Dense matrices, and the fixed 3×3 naive product.
// All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical reference kernels, once over Go operators
//     (ring.Scalar) and once over an arbitrary ring.Ring.
//   - Define operation tags for deterministic error reporting.
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf at the facade.
//   - Loop orders are fixed; results never depend on scheduling.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rank23/ring"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// addSub computes elementwise out = a ⊕ b where ⊕ is r.Add or r.Sub.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: NotNil(a) → NotNil(b) → SameShape. Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, wrapped with opAdd/opSub.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[E any](a, b Matrix[E], op func(x, y E) E, opTag string) (*Dense[E], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[E](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense[E]); okA {
		if db, okB := b.(*Dense[E]); okB {
			for idx := range res.data {
				res.data[idx] = op(da.data[idx], db.data[idx])
			}
			return res, nil
		}
	}

	var av, bv E
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = op(av, bv)
		}
	}

	return res, nil
}

// Add returns a + b over r as a new Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[E any](r ring.Ring[E], a, b Matrix[E]) (*Dense[E], error) {
	return addSub(a, b, r.Add, opAdd)
}

// Sub returns a - b over r as a new Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[E any](r ring.Ring[E], a, b Matrix[E]) (*Dense[E], error) {
	return addSub(a, b, r.Sub, opSub)
}

// Mul computes the matrix product a×b with Go operators.
// Validates shapes and returns a new Dense; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows, b.Cols).
//   - Stage 2: If both are *Dense, run the cache-friendly i→k→j loop over
//     flat slices, skipping zero entries of a. Otherwise a generic i→j→k
//     triple loop via At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows), wrapped with "Mul".
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p).
//
// Notes:
//   - For floats the summation order differs from a per-entry dot product
//     only in the skipped zeros; results are exact for integer types.
func Mul[T ring.Scalar](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  T
		current T
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MulRing computes a×b over r with the i→j→k triple loop.
// Every output entry starts from the first product, so an n×n product
// costs exactly n³ multiplications and n²(n-1) additions.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions (zero-width operands).
func MulRing[E any](r ring.Ring[E], a, b Matrix[E]) (*Dense[E], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[E](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if aCols == 0 {
		return nil, matrixErrorf(opMul, ErrInvalidDimensions)
	}

	at := func(m Matrix[E], i, j int) (E, error) {
		if d, ok := m.(*Dense[E]); ok {
			return d.data[i*d.c+j], nil
		}
		return m.At(i, j)
	}

	var av, bv, acc E
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			for k := 0; k < aCols; k++ {
				if av, err = at(a, i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = at(b, k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if k == 0 {
					acc = r.Mul(av, bv)
				} else {
					acc = r.Add(acc, r.Mul(av, bv))
				}
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Naive3 is the textbook 3×3 product: C[i][j] = Σk A[i][k]·B[k][j].
// It performs 27 multiplications and 18 additions and is the reference
// the fast kernels are verified against.
func Naive3[T ring.Scalar](a, b Mat3[T]) Mat3[T] {
	var c Mat3[T]
	for i := 0; i < Order; i++ {
		for j := 0; j < Order; j++ {
			c[i*Order+j] = a[i*Order]*b[j] + a[i*Order+1]*b[Order+j] + a[i*Order+2]*b[2*Order+j]
		}
	}

	return c
}

// Naive3Ring is Naive3 over r, with the same 27/18 operation count.
func Naive3Ring[E any](r ring.Ring[E], a, b Mat3[E]) Mat3[E] {
	var c Mat3[E]
	for i := 0; i < Order; i++ {
		for j := 0; j < Order; j++ {
			acc := r.Mul(a[i*Order], b[j])
			acc = r.Add(acc, r.Mul(a[i*Order+1], b[Order+j]))
			acc = r.Add(acc, r.Mul(a[i*Order+2], b[2*Order+j]))
			c[i*Order+j] = acc
		}
	}

	return c
}
