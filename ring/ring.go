// SPDX-License-Identifier: MIT

package ring

import "golang.org/x/exp/constraints"

// Scalar permits every built-in numeric type. All of them support the
// + - * operators and unary negation that the kernels need.
//
// Unsigned integers form the ring Z/2ⁿZ (wrap-around arithmetic), so they
// are exact too. Floats are a ring only up to rounding.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Ring is the method-based view of a ring with identity.
//
// Implementations must be pure: an operation never mutates its arguments
// and the returned element never aliases an argument that the caller may
// later mutate. Kernels rely on this to share intermediate terms between
// several products.
type Ring[E any] interface {
	// Zero returns the additive identity.
	Zero() E

	// One returns the multiplicative identity.
	One() E

	// Add returns a + b.
	Add(a, b E) E

	// Sub returns a - b.
	Sub(a, b E) E

	// Neg returns -a.
	Neg(a E) E

	// Mul returns a * b. Operand order is preserved (a on the left), so
	// non-commutative rings such as matrix blocks are supported.
	Mul(a, b E) E

	// Equal reports whether a and b denote the same ring element.
	Equal(a, b E) bool
}

// Numeric adapts a Scalar type to the Ring interface using Go operators.
// The zero value is ready to use.
type Numeric[T Scalar] struct{}

// Zero returns 0.
func (Numeric[T]) Zero() T { return 0 }

// One returns 1.
func (Numeric[T]) One() T { return 1 }

// Add returns a + b.
func (Numeric[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Numeric[T]) Sub(a, b T) T { return a - b }

// Neg returns -a.
func (Numeric[T]) Neg(a T) T { return -a }

// Mul returns a * b.
func (Numeric[T]) Mul(a, b T) T { return a * b }

// Equal reports a == b. For floats this is exact IEEE comparison
// (NaN != NaN); use a tolerance-based comparison for rounded results.
func (Numeric[T]) Equal(a, b T) bool { return a == b }
