// Package ring describes the scalar algebra that the rank-23 kernel runs on.
//
// Two views of a ring are offered:
//
//   - Scalar: a type-parameter constraint over Go's built-in numeric types.
//     Kernels constrained by Scalar use the native + - * operators and
//     compile to straight-line arithmetic with no dispatch at all.
//   - Ring[E]: an interface for element types that cannot use Go operators
//     (residues mod m, polynomials, arbitrary-precision integers, matrix
//     blocks). Kernels written against Ring[E] perform exactly the same
//     sequence of operations, one method call per operation.
//
// Concrete rings:
//
//	Numeric[T]  — adapter from Scalar to Ring[T]
//	Mod         — Z/mZ over uint64, exact for every 64-bit modulus
//	Poly        — Z[x] with int64 coefficients
//	BigInt      — Z over *big.Int (FFT multiplication for large operands)
//	Counter[E]  — wraps any Ring[E] and counts its operations
//
// Counter is how the operation-count claims of the kernels are measured
// rather than asserted.
package ring
