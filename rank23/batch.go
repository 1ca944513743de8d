// SPDX-License-Identifier: MIT

package rank23

import (
	"context"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// MulBatch computes out[i] = Mul(as[i], bs[i]) for every pair.
//
// Implementation:
//   - Stage 1: require len(as) == len(bs).
//   - Stage 2: split the index range into chunks of ChunkSize and run one
//     errgroup task per chunk, at most Workers at a time.
//   - Stage 3: each task writes only its own indices of out, so the
//     kernels share no state.
//
// Errors:
//   - matrix.ErrDimensionMismatch when the batches differ in length.
//   - ctx.Err() if ctx is cancelled; out is discarded in that case.
//
// Determinism:
//   - Results do not depend on Workers or ChunkSize.
func MulBatch[T ring.Scalar](ctx context.Context, as, bs []matrix.Mat3[T], opts ...Option) ([]matrix.Mat3[T], error) {
	return mulBatch(ctx, as, bs, Mul[T], opts...)
}

// MulBatchRing is MulBatch over r. r must be safe for concurrent use;
// every ring in package ring is.
func MulBatchRing[E any](ctx context.Context, r ring.Ring[E], as, bs []matrix.Mat3[E], opts ...Option) ([]matrix.Mat3[E], error) {
	if r == nil {
		return nil, rankErrorf(opMulBatch, ring.ErrNilRing)
	}

	return mulBatch(ctx, as, bs, func(a, b matrix.Mat3[E]) matrix.Mat3[E] {
		return MulRing(r, a, b)
	}, opts...)
}

func mulBatch[E any](ctx context.Context, as, bs []matrix.Mat3[E], kernel func(a, b matrix.Mat3[E]) matrix.Mat3[E], opts ...Option) ([]matrix.Mat3[E], error) {
	if len(as) != len(bs) {
		return nil, rankErrorf(opMulBatch, matrix.ErrDimensionMismatch)
	}
	if err := ctx.Err(); err != nil {
		return nil, rankErrorf(opMulBatch, err)
	}
	o := gatherOptions(opts...)
	out := make([]matrix.Mat3[E], len(as))
	if len(as) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for _, chunk := range lo.Chunk(lo.Range(len(as)), o.chunkSize) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for _, i := range chunk {
				out[i] = kernel(as[i], bs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, rankErrorf(opMulBatch, err)
	}
	if err := ctx.Err(); err != nil { // cancelled after the last chunk started
		return nil, rankErrorf(opMulBatch, err)
	}

	return out, nil
}
