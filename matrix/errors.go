// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the typed shape error.
// Every exported function returns these sentinels, either directly or
// wrapped with fmt.Errorf("<tag>: %w", ErrX); tests match them via errors.Is.
// Panics are reserved for programmer errors (Mat3.At with a bad index).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> index range.

var (
	// ErrBadShape is returned when an input is not the shape an operation
	// requires (e.g., a 3×3 kernel given 8 elements or a ragged row).
	// *ShapeError values match it via errors.Is.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNaNInf signals a NaN or ±Inf tolerance handed to a float comparison.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ShapeError is the precondition violation raised before any arithmetic
// when an input is not a well-formed 3×3 row-major matrix.
//
// Exactly one of the shape descriptions is populated:
//   - Len >= 0            — a flat input held Len elements instead of 9;
//   - Row >= 0            — row-structured input whose row Row held Cols entries;
//   - otherwise Rows×Cols — a row-structured or dense input of the wrong size.
type ShapeError struct {
	Op   string // operation that rejected the input, e.g. "MulSlice"
	Arg  string // argument name, e.g. "a" or "b"
	Len  int    // flat element count, or -1
	Rows int    // observed row count, or -1
	Cols int    // observed column count (or ragged row length), or -1
	Row  int    // index of the first ragged row, or -1
}

// Error implements error.
func (e *ShapeError) Error() string {
	switch {
	case e.Len >= 0:
		return fmt.Sprintf("%s: %s: %s has %d elements, want %d", ErrBadShape, e.Op, e.Arg, e.Len, Size)
	case e.Row >= 0:
		return fmt.Sprintf("%s: %s: %s row %d has %d entries, want %d", ErrBadShape, e.Op, e.Arg, e.Row, e.Cols, Order)
	default:
		return fmt.Sprintf("%s: %s: %s is %dx%d, want %dx%d", ErrBadShape, e.Op, e.Arg, e.Rows, e.Cols, Order, Order)
	}
}

// Unwrap exposes ErrBadShape so errors.Is(err, ErrBadShape) holds.
func (e *ShapeError) Unwrap() error { return ErrBadShape }

// flatShapeError reports a flat input of n elements.
func flatShapeError(op, arg string, n int) *ShapeError {
	return &ShapeError{Op: op, Arg: arg, Len: n, Rows: -1, Cols: -1, Row: -1}
}

// gridShapeError reports a rows×cols input.
func gridShapeError(op, arg string, rows, cols int) *ShapeError {
	return &ShapeError{Op: op, Arg: arg, Len: -1, Rows: rows, Cols: cols, Row: -1}
}

// raggedShapeError reports row `row` holding n entries.
func raggedShapeError(op, arg string, row, n int) *ShapeError {
	return &ShapeError{Op: op, Arg: arg, Len: -1, Rows: Order, Cols: n, Row: row}
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
