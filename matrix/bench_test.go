// Package matrix_test provides benchmarks for the reference products,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
)

// benchSizes are the dense matrix sizes to benchmark.
var benchSizes = []int{27, 81, 243}

// sinks to defeat dead-code elimination
var (
	sinkD  *matrix.Dense[int64]
	sink3  matrix.Mat3[int64]
	sink3M matrix.Mat3[uint64]
)

func randDense(b *testing.B, n int, seed uint64) *matrix.Dense[int64] {
	b.Helper()
	rng := rand.New(rand.NewPCG(seed, 0))
	m, err := matrix.NewDense[int64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := range m.Raw() {
		m.Raw()[i] = rng.Int64N(19) - 9
	}
	return m
}

func BenchmarkNaive3(b *testing.B) {
	b.ReportAllocs()
	x := matrix.Mat3[int64]{1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := matrix.Mat3[int64]{9, 8, 7, 6, 5, 4, 3, 2, 1}
	for i := 0; i < b.N; i++ {
		sink3 = matrix.Naive3(x, y)
	}
}

func BenchmarkNaive3Ring_Mod(b *testing.B) {
	b.ReportAllocs()
	r := ring.MustMod(1_000_000_007)
	x := matrix.Map3(matrix.Mat3[int64]{1, 2, 3, 4, 5, 6, 7, 8, 9}, r.Elem)
	y := matrix.Map3(matrix.Mat3[int64]{9, 8, 7, 6, 5, 4, 3, 2, 1}, r.Elem)
	for i := 0; i < b.N; i++ {
		sink3M = matrix.Naive3Ring[uint64](r, x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 1337)
			B := randDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul[int64](A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}
