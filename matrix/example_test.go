package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
)

// ExampleFromRows builds a matrix from nested rows and shows the error a
// ragged row produces.
func ExampleFromRows() {
	m, err := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	fmt.Print(m)
	fmt.Println(err)

	_, err = matrix.FromRows([][]int{{1, 2, 3}, {4, 5}, {7, 8, 9}})
	fmt.Println(err)
	fmt.Println(errors.Is(err, matrix.ErrBadShape))

	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
	// [7, 8, 9]
	// <nil>
	// matrix: invalid shape: FromRows: rows row 1 has 2 entries, want 3
	// true
}

// ExampleNaive3Ring multiplies residues modulo 7.
func ExampleNaive3Ring() {
	r := ring.MustMod(7)
	a := matrix.Map3(matrix.Mat3[int64]{1, 2, 3, 4, 5, 6, 7, 8, 9}, r.Elem)
	b := matrix.Identity3Ring[uint64](r)

	fmt.Print(matrix.Naive3Ring[uint64](r, a, b))

	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
	// [0, 1, 2]
}
