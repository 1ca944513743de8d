// Package rank23_test benchmarks the rank-23 kernel against the naive
// product over the rings where multiplication cost differs.
package rank23_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/rank23"
	"github.com/katalvlaran/rank23/ring"
)

// sinks to defeat dead-code elimination
var (
	sinkI   matrix.Mat3[int64]
	sinkM   matrix.Mat3[uint64]
	sinkB   matrix.Mat3[*big.Int]
	sinkD   *matrix.Dense[int64]
	sinkOut []matrix.Mat3[int64]
)

var (
	benchA = matrix.Mat3[int64]{2, -1, 0, 3, 4, -5, 1, 1, 1}
	benchB = matrix.Mat3[int64]{0, 1, 2, -3, 4, 5, 6, -7, 8}
)

func BenchmarkMul_Int64(b *testing.B) {
	b.ReportAllocs()
	b.Run("rank23", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkI = rank23.Mul(benchA, benchB)
		}
	})
	b.Run("naive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkI = matrix.Naive3(benchA, benchB)
		}
	})
}

func BenchmarkMul_Mod(b *testing.B) {
	b.ReportAllocs()
	r := ring.MustMod(1_000_000_007)
	x, y := matrix.Map3(benchA, r.Elem), matrix.Map3(benchB, r.Elem)
	b.Run("rank23", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkM = rank23.MulRing[uint64](r, x, y)
		}
	})
	b.Run("naive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkM = matrix.Naive3Ring[uint64](r, x, y)
		}
	})
}

// BenchmarkMul_BigInt uses 4096-bit entries, where a multiplication costs
// far more than an addition and saving four of them pays off.
func BenchmarkMul_BigInt(b *testing.B) {
	b.ReportAllocs()
	r := ring.BigInt{}
	base := new(big.Int).Lsh(big.NewInt(1), 4096)
	lift := func(v int64) *big.Int { return new(big.Int).Add(base, big.NewInt(v)) }
	x, y := matrix.Map3(benchA, lift), matrix.Map3(benchB, lift)
	b.Run("rank23", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkB = rank23.MulRing[*big.Int](r, x, y)
		}
	})
	b.Run("naive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkB = matrix.Naive3Ring[*big.Int](r, x, y)
		}
	})
}

func BenchmarkMulBatch(b *testing.B) {
	b.ReportAllocs()
	as, bs := randPairs(1<<14, 3)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				out, err := rank23.MulBatch(context.Background(), as, bs, rank23.WithWorkers(workers))
				if err != nil {
					b.Fatal(err)
				}
				sinkOut = out
			}
		})
	}
}

func BenchmarkMulRecursive(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{81, 243} {
		x, y := randDense(b, n, 1), randDense(b, n, 2)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := rank23.MulRecursive[int64](x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}
