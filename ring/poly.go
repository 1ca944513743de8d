// SPDX-License-Identifier: MIT

package ring

import (
	"strconv"
	"strings"
)

// Polynomial is an element of Z[x]: p[i] is the coefficient of xⁱ.
// The canonical form has no trailing zero coefficients; the zero
// polynomial is the empty (or nil) slice.
type Polynomial []int64

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	return len(trim(p)) - 1
}

// Eval evaluates p at x with Horner's rule (int64 wrap-around arithmetic).
func (p Polynomial) Eval(x int64) int64 {
	var acc int64
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*x + p[i]
	}

	return acc
}

// String renders p highest degree first, e.g. "3x^2 - x + 7".
func (p Polynomial) String() string {
	q := trim(p)
	if len(q) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i := len(q) - 1; i >= 0; i-- {
		c := q[i]
		if c == 0 {
			continue
		}
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs != 1 || i == 0 {
			sb.WriteString(strconv.FormatInt(abs, 10))
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			sb.WriteString("x^" + strconv.Itoa(i))
		}
	}

	return sb.String()
}

// trim returns p without trailing zero coefficients (shares p's storage).
func trim(p Polynomial) Polynomial {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}

	return p[:n]
}

// Poly is the polynomial ring Z[x]. Coefficients use int64 wrap-around
// arithmetic, so results are exact as long as no coefficient overflows.
// Every operation returns a freshly allocated, canonical Polynomial.
type Poly struct{}

// Zero returns the zero polynomial.
func (Poly) Zero() Polynomial { return nil }

// One returns the constant polynomial 1.
func (Poly) One() Polynomial { return Polynomial{1} }

// Add returns a + b.
func (Poly) Add(a, b Polynomial) Polynomial {
	return combine(a, b, 1)
}

// Sub returns a - b.
func (Poly) Sub(a, b Polynomial) Polynomial {
	return combine(a, b, -1)
}

// Neg returns -a.
func (Poly) Neg(a Polynomial) Polynomial {
	return combine(nil, a, -1)
}

// Mul returns a * b (schoolbook convolution).
func (Poly) Mul(a, b Polynomial) Polynomial {
	a, b = trim(a), trim(b)
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(Polynomial, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			out[i+j] += ai * bj
		}
	}

	return trim(out)
}

// Equal compares canonical forms, so trailing zeros are irrelevant.
func (Poly) Equal(a, b Polynomial) bool {
	a, b = trim(a), trim(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// combine returns a + sign*b in canonical form.
func combine(a, b Polynomial, sign int64) Polynomial {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Polynomial, n)
	copy(out, a)
	for i, bi := range b {
		out[i] += sign * bi
	}

	return trim(out)
}
