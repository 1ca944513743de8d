// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rank23/ring"
)

// Mat3 is a 3×3 matrix stored as 9 entries in row-major order:
// index 3*i + j holds row i, column j.
//
// Mat3 is a value type. Passing it copies all nine entries, so a kernel
// that receives a Mat3 cannot mutate the caller's matrix, and a freshly
// returned Mat3 shares nothing with its inputs (for reference element
// types such as *big.Int, only the pointers are copied; the ring
// implementations never mutate elements).
type Mat3[T any] [Size]T

// At returns the entry at row i, column j.
// It panics if i or j is outside [0, 3), like an array index would.
func (m Mat3[T]) At(i, j int) T {
	if i < 0 || i >= Order || j < 0 || j >= Order {
		panic(fmt.Sprintf("matrix: Mat3.At(%d,%d): index out of range", i, j))
	}

	return m[i*Order+j]
}

// Row returns row i as an array. Panics like At on a bad index.
func (m Mat3[T]) Row(i int) [Order]T {
	if i < 0 || i >= Order {
		panic(fmt.Sprintf("matrix: Mat3.Row(%d): index out of range", i))
	}

	return [Order]T{m[i*Order], m[i*Order+1], m[i*Order+2]}
}

// Rows returns the matrix as freshly allocated nested slices.
func (m Mat3[T]) Rows() [][]T {
	out := make([][]T, Order)
	for i := range out {
		row := m.Row(i)
		out[i] = row[:]
	}

	return out
}

// Slice returns the nine entries as a freshly allocated row-major slice.
func (m Mat3[T]) Slice() []T {
	out := make([]T, Size)
	copy(out, m[:])

	return out
}

// Dense converts m into a 3×3 *Dense.
func (m Mat3[T]) Dense() *Dense[T] {
	return &Dense[T]{r: Order, c: Order, data: m.Slice()}
}

// String renders one bracketed row per line, matching Dense.String.
func (m Mat3[T]) String() string {
	var sb strings.Builder
	for i := 0; i < Order; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < Order; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m[i*Order+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// FromSlice builds a Mat3 from exactly nine row-major entries.
// Errors: *ShapeError (matches ErrBadShape) when len(v) != 9.
func FromSlice[T any](v []T) (Mat3[T], error) {
	var m Mat3[T]
	if err := ValidateLen(v, "FromSlice", "v"); err != nil {
		return m, err
	}
	copy(m[:], v)

	return m, nil
}

// FromRows builds a Mat3 from exactly three rows of exactly three entries.
// Errors: *ShapeError (matches ErrBadShape) for a wrong row count or a
// ragged row.
func FromRows[T any](rows [][]T) (Mat3[T], error) {
	var m Mat3[T]
	if err := ValidateRows3x3(rows, "FromRows", "rows"); err != nil {
		return m, err
	}
	for i, row := range rows {
		copy(m[i*Order:(i+1)*Order], row)
	}

	return m, nil
}

// FromMatrix copies a 3×3 Matrix into a Mat3.
// Errors: ErrNilMatrix, *ShapeError for any other shape.
func FromMatrix[T any](src Matrix[T]) (Mat3[T], error) {
	var m Mat3[T]
	if err := Validate3x3(src, "FromMatrix", "src"); err != nil {
		return m, err
	}
	if d, ok := src.(*Dense[T]); ok { // fast path: flat copy
		copy(m[:], d.data)
		return m, nil
	}
	for i := 0; i < Order; i++ {
		for j := 0; j < Order; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return m, matrixErrorf("FromMatrix", err)
			}
			m[i*Order+j] = v
		}
	}

	return m, nil
}

// Zero3 returns the 3×3 zero matrix.
func Zero3[T ring.Scalar]() Mat3[T] {
	return Mat3[T]{}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3[T ring.Scalar]() Mat3[T] {
	return Mat3[T]{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Identity3Ring returns the 3×3 identity over r.
func Identity3Ring[E any](r ring.Ring[E]) Mat3[E] {
	var m Mat3[E]
	for i := range m {
		if i%(Order+1) == 0 {
			m[i] = r.One()
		} else {
			m[i] = r.Zero()
		}
	}

	return m
}

// Map3 applies f to every entry, e.g. to lift an integer matrix into a
// residue ring.
func Map3[T, U any](m Mat3[T], f func(T) U) Mat3[U] {
	var out Mat3[U]
	for i, v := range m {
		out[i] = f(v)
	}

	return out
}

// Equal3 reports whether a and b are equal entry for entry under r.
func Equal3[E any](r ring.Ring[E], a, b Mat3[E]) bool {
	for i := range a {
		if !r.Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
