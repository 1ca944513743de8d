// SPDX-License-Identifier: MIT

// Dense[T] backs the drivers that work beyond a single 3×3 product: the
// recursive block multiplier pads, splits and reassembles through Block
// and SetBlock, and the naive reference Mul runs on the flat buffer.
// Entries live at offset i*cols + j. At and Set report bad indices as
// errors; only Mat3 panics, since its indices are compile-time shaped.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxBlock    = "Block"    // method tag for Dense.Block
	ctxSetBlock = "SetBlock" // method tag for Dense.SetBlock
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf tags err with the Dense method and the offending index.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix over any element type, including ring
// elements such as *big.Int or polynomials.
type Dense[T any] struct {
	r, c int // row and column counts (> 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Interface checks.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[int])(nil)
)

// NewDense creates an r×c matrix of zero values using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}

	// Allocate flat storage; the runtime zero-fills it.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// Errors: ErrInvalidDimensions for non-positive sizes, ErrDimensionMismatch
// when len(data) != rows*cols.
// Complexity: O(r*c).
func NewDenseFrom[T any](rows, cols int, data []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf("NewDenseFrom", ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange wrapped with "Dense.At(row,col)".
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange wrapped with "Dense.Set(row,col)".
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() Matrix[T] {
	return m.clone()
}

// clone is the concretely-typed Clone used by the package kernels.
func (m *Dense[T]) clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// Raw returns the backing row-major slice WITHOUT copying.
// Writes through it mutate m; callers that need isolation use Clone.
func (m *Dense[T]) Raw() []T { return m.data }

// Block copies the h×w window whose top-left corner is (r0, c0) into a new Dense.
// Implementation:
//   - Stage 1: validate h,w > 0 and that the window lies inside m.
//   - Stage 2: copy row segments with the built-in copy (one per row).
//
// Errors:
//   - ErrInvalidDimensions (h or w ≤ 0), ErrOutOfRange (window exceeds m).
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func (m *Dense[T]) Block(r0, c0, h, w int) (*Dense[T], error) {
	out, err := NewDense[T](h, w)
	if err != nil {
		return nil, matrixErrorf(ctxBlock, err)
	}
	if r0 < 0 || c0 < 0 || r0+h > m.r || c0+w > m.c {
		return nil, denseErrorf(ctxBlock, r0, c0, ErrOutOfRange)
	}
	for i := 0; i < h; i++ { // one contiguous segment per row
		src := (r0+i)*m.c + c0
		copy(out.data[i*w:(i+1)*w], m.data[src:src+w])
	}

	return out, nil
}

// SetBlock copies src into m with src's top-left corner at (r0, c0).
// Errors: ErrNilMatrix, ErrOutOfRange (src does not fit).
// Complexity: O(src.Rows()*src.Cols()).
func (m *Dense[T]) SetBlock(r0, c0 int, src *Dense[T]) error {
	if src == nil {
		return matrixErrorf(ctxSetBlock, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 || r0+src.r > m.r || c0+src.c > m.c {
		return denseErrorf(ctxSetBlock, r0, c0, ErrOutOfRange)
	}
	for i := 0; i < src.r; i++ {
		dst := (r0+i)*m.c + c0
		copy(m.data[dst:dst+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return nil
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
