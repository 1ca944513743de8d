// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, r, c int) matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.NewDense[int](r, c)
	require.NoError(t, err)
	return m
}

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix[int]
		wantErr error
	}{
		{"equal 2x3", dense(t, 2, 3), dense(t, 2, 3), nil},
		{"row mismatch", dense(t, 2, 3), dense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(t, 2, 3), dense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateNotNil rejects both an untyped nil and a typed nil *Dense.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)

	var d *matrix.Dense[int]
	require.ErrorIs(t, matrix.ValidateNotNil[int](d), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(dense(t, 1, 1)))
}

func TestValidateSquareAndMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(dense(t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateSquare(dense(t, 4, 3)), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(dense(t, 2, 3), dense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(dense(t, 2, 3), dense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, dense(t, 2, 3)), matrix.ErrNilMatrix)
}

// TestValidateLen reports the observed element count.
func TestValidateLen(t *testing.T) {
	for _, n := range []int{0, 8, 10} {
		err := matrix.ValidateLen(make([]int, n), "MulSlice", "a")
		require.ErrorIs(t, err, matrix.ErrBadShape)

		var se *matrix.ShapeError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, n, se.Len)
		assert.Equal(t, "MulSlice", se.Op)
	}
	require.NoError(t, matrix.ValidateLen(make([]int, 9), "MulSlice", "a"))
	require.ErrorIs(t, matrix.ValidateLen[int](nil, "MulSlice", "b"), matrix.ErrBadShape)
}

// TestValidateRows3x3 names the first ragged row.
func TestValidateRows3x3(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantMsg string
	}{
		{"two rows", [][]int{{1, 2, 3}, {4, 5, 6}}, "is 2x3, want 3x3"},
		{"four rows", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {0, 0, 0}}, "is 4x3, want 3x3"},
		{"no rows", nil, "is 0x-1, want 3x3"},
		{"ragged middle", [][]int{{1, 2, 3}, {4, 5}, {7, 8, 9}}, "row 1 has 2 entries, want 3"},
		{"long last", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9, 10}}, "row 2 has 4 entries, want 3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateRows3x3(tc.rows, "FromRows", "rows")
			require.ErrorIs(t, err, matrix.ErrBadShape)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidate3x3(t *testing.T) {
	require.NoError(t, matrix.Validate3x3(dense(t, 3, 3), "MulDense", "a"))
	require.ErrorIs(t, matrix.Validate3x3[int](nil, "MulDense", "a"), matrix.ErrNilMatrix)

	err := matrix.Validate3x3(dense(t, 2, 3), "MulDense", "b")
	var se *matrix.ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Rows)
	assert.Equal(t, "matrix: invalid shape: MulDense: b is 2x3, want 3x3", err.Error())
}
