package rank23_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/rank23"
	"github.com/katalvlaran/rank23/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	o := rank23.NewOptions()
	assert.GreaterOrEqual(t, o.Workers(), 1)
	assert.Equal(t, rank23.DefaultChunkSize, o.ChunkSize())
	assert.Equal(t, rank23.DefaultLeafSize, o.LeafSize())

	o = rank23.NewOptions(rank23.WithWorkers(3), nil, rank23.WithChunkSize(5), rank23.WithLeafSize(2))
	assert.Equal(t, 3, o.Workers())
	assert.Equal(t, 5, o.ChunkSize())
	assert.Equal(t, 2, o.LeafSize())

	assert.Panics(t, func() { rank23.WithWorkers(0) })
	assert.Panics(t, func() { rank23.WithChunkSize(-1) })
	assert.Panics(t, func() { rank23.WithLeafSize(0) })
}

func randPairs(n int, seed uint64) (as, bs []matrix.Mat3[int64]) {
	rng := rand.New(rand.NewPCG(seed, seed))
	as = make([]matrix.Mat3[int64], n)
	bs = make([]matrix.Mat3[int64], n)
	for i := range as {
		as[i], bs[i] = randMat3(rng, -9, 9), randMat3(rng, -9, 9)
	}
	return as, bs
}

// TestMulBatch checks every result against the per-pair kernel for
// several worker and chunk layouts.
func TestMulBatch(t *testing.T) {
	as, bs := randPairs(1000, 42)

	for _, layout := range []struct{ workers, chunk int }{{1, 1}, {4, 7}, {8, 256}, {2, 5000}} {
		t.Run(fmt.Sprintf("w=%d/c=%d", layout.workers, layout.chunk), func(t *testing.T) {
			out, err := rank23.MulBatch(context.Background(), as, bs,
				rank23.WithWorkers(layout.workers), rank23.WithChunkSize(layout.chunk))
			require.NoError(t, err)
			require.Len(t, out, len(as))
			for i := range out {
				require.Equal(t, matrix.Naive3(as[i], bs[i]), out[i], "pair %d", i)
			}
		})
	}
}

func TestMulBatch_Errors(t *testing.T) {
	as, bs := randPairs(10, 1)

	_, err := rank23.MulBatch(context.Background(), as, bs[:9])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = rank23.MulBatch(ctx, as, bs)
	require.ErrorIs(t, err, context.Canceled)

	out, err := rank23.MulBatch[int64](context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMulBatchRing(t *testing.T) {
	r := ring.MustMod(7)
	as, bs := randPairs(300, 9)
	ma := make([]matrix.Mat3[uint64], len(as))
	mb := make([]matrix.Mat3[uint64], len(bs))
	for i := range as {
		ma[i], mb[i] = matrix.Map3(as[i], r.Elem), matrix.Map3(bs[i], r.Elem)
	}

	out, err := rank23.MulBatchRing[uint64](context.Background(), r, ma, mb, rank23.WithChunkSize(16))
	require.NoError(t, err)
	for i := range out {
		require.Equal(t, matrix.Map3(matrix.Naive3(as[i], bs[i]), r.Elem), out[i])
	}

	_, err = rank23.MulBatchRing[uint64](context.Background(), nil, ma, mb)
	require.ErrorIs(t, err, ring.ErrNilRing)
}

func randDense(t testing.TB, n int, seed uint64) *matrix.Dense[int64] {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 0))
	m, err := matrix.NewDense[int64](n, n)
	require.NoError(t, err)
	for i := range m.Raw() {
		m.Raw()[i] = rng.Int64N(19) - 9
	}
	return m
}

// TestMulRecursive compares against the naive dense product, including
// sizes that need padding.
func TestMulRecursive(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9, 27, 30} {
		for _, leaf := range []int{1, 3, rank23.DefaultLeafSize} {
			t.Run(fmt.Sprintf("n=%d/leaf=%d", n, leaf), func(t *testing.T) {
				a, b := randDense(t, n, uint64(n)), randDense(t, n, uint64(n)+100)
				want, err := matrix.Mul[int64](a, b)
				require.NoError(t, err)

				got, err := rank23.MulRecursive[int64](a, b, rank23.WithLeafSize(leaf))
				require.NoError(t, err)
				require.Equal(t, n, got.Rows())
				require.Equal(t, want.Raw(), got.Raw())
			})
		}
	}
}

// TestMulRecursiveRing_Counts shows 23 block products per level: a 9×9
// product split down to 1×1 leaves costs 23² scalar multiplications.
func TestMulRecursiveRing_Counts(t *testing.T) {
	c, err := ring.NewCounter[int64](ring.Numeric[int64]{})
	require.NoError(t, err)
	a, b := randDense(t, 9, 1), randDense(t, 9, 2)

	got, err := rank23.MulRecursiveRing[int64](c, a, b, rank23.WithLeafSize(1))
	require.NoError(t, err)
	assert.Equal(t, int64(rank23.Multiplications*rank23.Multiplications), c.Counts().Muls)

	want, err := matrix.Mul[int64](a, b)
	require.NoError(t, err)
	assert.Equal(t, want.Raw(), got.Raw())
}

func TestMulRecursive_Mod(t *testing.T) {
	r := ring.MustMod(1_000_000_007)
	a, err := matrix.NewDense[uint64](10, 10)
	require.NoError(t, err)
	b, err := matrix.NewDense[uint64](10, 10)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(5, 5))
	for i := range a.Raw() {
		a.Raw()[i], b.Raw()[i] = rng.Uint64N(r.Modulus()), rng.Uint64N(r.Modulus())
	}

	got, err := rank23.MulRecursiveRing[uint64](r, a, b, rank23.WithLeafSize(2))
	require.NoError(t, err)
	want, err := matrix.MulRing[uint64](r, a, b)
	require.NoError(t, err)
	assert.Equal(t, want.Raw(), got.Raw())
}

func TestMulRecursive_Errors(t *testing.T) {
	sq := randDense(t, 4, 1)
	rect, err := matrix.NewDense[int64](4, 5)
	require.NoError(t, err)

	_, err = rank23.MulRecursive[int64](sq, rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = rank23.MulRecursive[int64](sq, randDense(t, 5, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = rank23.MulRecursive[int64](nil, sq)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = rank23.MulRecursiveRing[int64](nil, sq, sq)
	require.ErrorIs(t, err, ring.ErrNilRing)
}
