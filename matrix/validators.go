// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Keep kernels and facades minimal by delegating guards here.
//  - Report 3×3 violations as *ShapeError so callers can inspect what was wrong.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Every validator runs before any arithmetic in the functions that use it.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected too.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T any](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape[T any](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare[T any](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateLen checks that a flat row-major input holds exactly 9 entries.
// op and arg name the caller and the argument in the returned *ShapeError.
// A nil slice counts as zero elements.
func ValidateLen[T any](v []T, op, arg string) error {
	if len(v) != Size {
		return flatShapeError(op, arg, len(v))
	}

	return nil
}

// ValidateRows3x3 checks that rows has exactly 3 rows of exactly 3 entries.
// The row count is checked first, then each row in order, so the error
// names the first ragged row.
func ValidateRows3x3[T any](rows [][]T, op, arg string) error {
	if len(rows) != Order {
		cols := -1
		if len(rows) > 0 {
			cols = len(rows[0])
		}
		return gridShapeError(op, arg, len(rows), cols)
	}
	for i, row := range rows {
		if len(row) != Order {
			return raggedShapeError(op, arg, i, len(row))
		}
	}

	return nil
}

// Validate3x3 – Composite: NotNil(m) → m is exactly 3×3.
// Errors: ErrNilMatrix (wrapped with op), *ShapeError.
func Validate3x3[T any](m Matrix[T], op, arg string) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(op, err)
	}
	if m.Rows() != Order || m.Cols() != Order {
		return gridShapeError(op, arg, m.Rows(), m.Cols())
	}

	return nil
}
