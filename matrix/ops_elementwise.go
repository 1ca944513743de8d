// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tolerance-based comparison for floating-point results, where the fast
//     kernels and the naive product sum in different orders and so are not
//     expected to agree bit for bit.
//
// Determinism & Performance:
//   - Single flat pass; early exit on the first violation. No allocation.

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b|.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(9). Space: O(1). Deterministic.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN or Inf tolerances return ErrNaNInf.
//   - A NaN entry never compares close, matching IEEE semantics.
func AllClose[F constraints.Float](a, b Mat3[F], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for idx := range a {
		av, bv := float64(a[idx]), float64(b[idx])
		if av == bv { // covers equal infinities
			continue
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) { // NaN-safe negation
			return false, nil
		}
	}

	return true, nil
}

// MaxAbsDiff returns the largest |a-b| over the nine entries and its flat index.
// Used by verification reports to show how far a float result drifted.
func MaxAbsDiff[F constraints.Float](a, b Mat3[F]) (diff float64, at int) {
	for idx := range a {
		d := math.Abs(float64(a[idx]) - float64(b[idx]))
		if d > diff || math.IsNaN(d) {
			diff, at = d, idx
			if math.IsNaN(d) {
				return diff, at
			}
		}
	}

	return diff, at
}
