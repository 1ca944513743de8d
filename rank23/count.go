// SPDX-License-Identifier: MIT

package rank23

import (
	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
)

// Operation counts of one 3×3 product.
const (
	// Multiplications is the rank of the scheme: scalar products per call.
	Multiplications = 23

	// Additions counts scalar additions and subtractions per call
	// (12 preprocessing, 20 inside product factors, 28 aggregation).
	Additions = 60

	// TotalOps is the arithmetic complexity of the scheme.
	TotalOps = Multiplications + Additions

	// NaiveMultiplications and NaiveAdditions are the costs of the
	// row-by-column product.
	NaiveMultiplications = matrix.Size * matrix.Order
	NaiveAdditions       = matrix.Size * (matrix.Order - 1)
)

// Count runs MulRing once through a counting ring and returns what it saw.
// The result is measured, not hard-coded: it is the check that the kernel
// really performs Multiplications and Additions operations.
func Count() ring.OpCounts {
	return countWith(func(r ring.Ring[int64], a, b matrix.Mat3[int64]) {
		_ = MulRing(r, a, b)
	})
}

// CountNaive measures matrix.Naive3Ring the same way.
func CountNaive() ring.OpCounts {
	return countWith(func(r ring.Ring[int64], a, b matrix.Mat3[int64]) {
		_ = matrix.Naive3Ring(r, a, b)
	})
}

func countWith(run func(r ring.Ring[int64], a, b matrix.Mat3[int64])) ring.OpCounts {
	c, _ := ring.NewCounter[int64](ring.Numeric[int64]{}) // never nil
	a := matrix.Mat3[int64]{1, 2, 3, 4, 5, 6, 7, 8, 9}
	run(c, a, matrix.Identity3[int64]())

	return c.Counts()
}
