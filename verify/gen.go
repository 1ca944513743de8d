// SPDX-License-Identifier: MIT

package verify

import (
	"math/rand/v2"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
)

// streams separates the random sequences of different checks that share a seed.
var streams = map[string]uint64{
	CheckInt64:   1,
	CheckMod:     2,
	CheckFloat64: 3,
	CheckPoly:    4,
	CheckPurity:  5,
}

// trialRand returns the generator for one trial of one check. It depends
// only on (seed, check, trial), never on which worker runs the trial.
func trialRand(seed uint64, check string, trial int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, streams[check]<<56|uint64(trial)))
}

func randInt(rng *rand.Rand, lo, hi int64) int64 {
	return lo + rng.Int64N(hi-lo+1)
}

func randIntMat3(rng *rand.Rand, lo, hi int64) matrix.Mat3[int64] {
	var m matrix.Mat3[int64]
	for i := range m {
		m[i] = randInt(rng, lo, hi)
	}

	return m
}

// randFloatMat3 draws continuous entries from [lo, hi].
func randFloatMat3(rng *rand.Rand, lo, hi int64) matrix.Mat3[float64] {
	var m matrix.Mat3[float64]
	span := float64(hi) - float64(lo)
	for i := range m {
		m[i] = float64(lo) + rng.Float64()*span
	}

	return m
}

// randPolyMat3 draws polynomials of degree ≤ 2 with coefficients in [lo, hi].
func randPolyMat3(rng *rand.Rand, lo, hi int64) matrix.Mat3[ring.Polynomial] {
	var m matrix.Mat3[ring.Polynomial]
	for i := range m {
		p := make(ring.Polynomial, 1+rng.IntN(3))
		for j := range p {
			p[j] = randInt(rng, lo, hi)
		}
		m[i] = p
	}

	return m
}
