// Package matrix holds the matrix types and the reference arithmetic used by
// the rank-23 kernels.
//
// The matrix package provides:
//
//   - Mat3, a 3×3 row-major value type. Being an array it is copied on
//     every call, so kernels can never mutate their inputs.
//   - FromSlice and FromRows, the checked constructors. Malformed input
//     (8 or 10 entries, a ragged row) yields a *ShapeError that matches
//     ErrBadShape.
//   - Dense, a generic row-major matrix of any size with safe At/Set and
//     Block/SetBlock copies for block algorithms.
//   - Naive3, Naive3Ring, Mul and MulRing, the textbook products every fast
//     kernel is checked against.
//   - AllClose for comparing floating-point results, which a fast kernel
//     does not reproduce bit for bit because it sums in a different order.
//
// Arithmetic is generic: functions constrained by ring.Scalar use Go
// operators, functions taking a ring.Ring work over any ring (residues
// mod m, polynomials, big integers).
//
// See the examples in this package for usage patterns.
package matrix
