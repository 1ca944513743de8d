// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
// This file intentionally contains ONLY the public Matrix interface and the
// fixed-order constants. Errors live in errors.go, the 3×3 value type in mat3.go.
package matrix

// Order is the side length handled by the fixed 3×3 kernels.
const Order = 3

// Size is the number of entries of an Order×Order matrix.
const Size = Order * Order

// Matrix represents a two-dimensional mutable array of ring elements.
// Element type T is unconstrained here; arithmetic helpers constrain it
// (ring.Scalar for operator-based kernels, ring.Ring[T] for method-based).
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix[T]
}
