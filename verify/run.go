// SPDX-License-Identifier: MIT

package verify

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/rank23"
	"github.com/katalvlaran/rank23/ring"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// trialFunc runs trial i with its own generator and returns nil on success.
type trialFunc func(trial int, rng *rand.Rand) *Failure

// Run executes every check and returns the report.
//
// Implementation:
//   - Stage 1: validate cfg; tag the logger with a fresh run id.
//   - Stage 2: run the fixed scenarios, then each randomized check with
//     cfg.Trials trials spread over cfg.Workers goroutines.
//   - Stage 3: measure the operation count of one kernel call.
//
// Errors:
//   - ErrInvalidConfig, or ctx.Err() when ctx is cancelled between trials.
//     Kernel mismatches are reported in Report, not as errors.
//
// Determinism:
//   - For a fixed cfg the report (minus RunID and Elapsed) is identical
//     across runs and worker counts.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	rep := Report{RunID: uuid.NewString(), Config: cfg}
	logger = logger.With(slog.String("component", "verify"), slog.String("run_id", rep.RunID))
	logger.Info("verification started",
		slog.Int("trials", cfg.Trials),
		slog.Uint64("seed", cfg.Seed),
		slog.Int("workers", cfg.Workers))

	modRing, err := ring.NewMod(cfg.Modulus)
	if err != nil {
		return Report{}, verifyErrorf("Modulus", err)
	}

	rep.Checks = append(rep.Checks, fixedScenarios())

	randomized := []struct {
		name string
		fn   trialFunc
	}{
		{CheckInt64, int64Trial(cfg)},
		{CheckMod, modTrial(cfg, modRing)},
		{CheckFloat64, float64Trial(cfg)},
		{CheckPoly, polyTrial(cfg)},
		{CheckPurity, purityTrial(cfg)},
	}
	for _, c := range randomized {
		logger.Debug("check started", slog.String("check", c.name))
		res, err := runTrials(ctx, cfg, c.name, c.fn)
		if err != nil {
			logger.Warn("verification cancelled", slog.String("check", c.name), slog.Any("error", err))
			return Report{}, err
		}
		rep.Checks = append(rep.Checks, res)
	}

	rep.Counts = rank23.Count()
	rep.Checks = append(rep.Checks, opCountCheck(rep.Counts))

	rep.Passed = lo.EveryBy(rep.Checks, CheckResult.Passed)
	rep.Elapsed = time.Since(start)
	for _, c := range rep.Checks {
		level := slog.LevelInfo
		if !c.Passed() {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "check finished",
			slog.String("check", c.Name),
			slog.Int("trials", c.Trials),
			slog.Int("failures", c.Failures))
	}
	logger.Info("verification finished",
		slog.Bool("passed", rep.Passed),
		slog.Duration("elapsed", rep.Elapsed))

	return rep, nil
}

// runTrials runs fn for trials 0..cfg.Trials-1. Each trial writes only its
// own slot, so the merge below sees a scheduling-independent order.
func runTrials(ctx context.Context, cfg Config, name string, fn trialFunc) (CheckResult, error) {
	failures := make([]*Failure, cfg.Trials)
	chunk := (cfg.Trials + cfg.Workers - 1) / cfg.Workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, idx := range lo.Chunk(lo.Range(cfg.Trials), chunk) {
		g.Go(func() error {
			for _, trial := range idx {
				if err := gctx.Err(); err != nil {
					return err
				}
				failures[trial] = fn(trial, trialRand(cfg.Seed, name, trial))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return CheckResult{}, verifyErrorf(name, err)
	}

	res := CheckResult{Name: name, Trials: cfg.Trials}
	for _, f := range failures {
		if f == nil {
			continue
		}
		res.Failures++
		if res.FirstFailure == nil {
			res.FirstFailure = f
		}
	}

	return res, nil
}

// fixedScenarios checks the hand-picked products: zero, identity, A·I and ones·ones.
func fixedScenarios() CheckResult {
	seq := matrix.Mat3[int64]{1, 2, 3, 4, 5, 6, 7, 8, 9}
	ones := matrix.Mat3[int64]{1, 1, 1, 1, 1, 1, 1, 1, 1}
	threes := matrix.Mat3[int64]{3, 3, 3, 3, 3, 3, 3, 3, 3}
	id := matrix.Identity3[int64]()
	zero := matrix.Zero3[int64]()

	scenarios := []struct {
		note       string
		a, b, want matrix.Mat3[int64]
	}{
		{"zero·zero", zero, zero, zero},
		{"I·I", id, id, id},
		{"A·I", seq, id, seq},
		{"ones·ones", ones, ones, threes},
	}

	res := CheckResult{Name: CheckFixed, Trials: len(scenarios)}
	for i, s := range scenarios {
		if got := rank23.Mul(s.a, s.b); got != s.want {
			res.Failures++
			if res.FirstFailure == nil {
				res.FirstFailure = newFailure(i, s.a, s.b, got, s.want)
				res.FirstFailure.Note = s.note
			}
		}
	}

	return res
}

// int64Trial compares the kernel with the naive product on exact integers.
func int64Trial(cfg Config) trialFunc {
	return func(trial int, rng *rand.Rand) *Failure {
		a, b := randIntMat3(rng, cfg.Min, cfg.Max), randIntMat3(rng, cfg.Min, cfg.Max)
		got, want := rank23.Mul(a, b), matrix.Naive3(a, b)
		if got != want {
			return newFailure(trial, a, b, got, want)
		}
		return nil
	}
}

// modTrial compares both products over Z/mZ after reducing the inputs.
func modTrial(cfg Config, r ring.Mod) trialFunc {
	return func(trial int, rng *rand.Rand) *Failure {
		a := matrix.Map3(randIntMat3(rng, cfg.Min, cfg.Max), r.Elem)
		b := matrix.Map3(randIntMat3(rng, cfg.Min, cfg.Max), r.Elem)
		got, want := rank23.MulRing[uint64](r, a, b), matrix.Naive3Ring[uint64](r, a, b)
		if got != want {
			return newFailure(trial, a, b, got, want)
		}
		return nil
	}
}

// float64Trial compares the kernel with gonum's dense product within a
// relative tolerance; the two sum in different orders.
func float64Trial(cfg Config) trialFunc {
	return func(trial int, rng *rand.Rand) *Failure {
		a, b := randFloatMat3(rng, cfg.Min, cfg.Max), randFloatMat3(rng, cfg.Min, cfg.Max)
		got := rank23.Mul(a, b)

		var prod mat.Dense
		prod.Mul(mat.NewDense(matrix.Order, matrix.Order, a.Slice()), mat.NewDense(matrix.Order, matrix.Order, b.Slice()))
		var want matrix.Mat3[float64]
		copy(want[:], prod.RawMatrix().Data)

		ok, err := matrix.AllClose(got, want, cfg.FloatTolerance, cfg.FloatTolerance)
		if err != nil || !ok {
			f := newFailure(trial, a, b, got, want)
			diff, at := matrix.MaxAbsDiff(got, want)
			f.Note = fmt.Sprintf("max |diff| %g at entry %d", diff, at)
			return f
		}
		return nil
	}
}

// polyTrial checks ring generality over Z[x].
func polyTrial(cfg Config) trialFunc {
	r := ring.Poly{}
	return func(trial int, rng *rand.Rand) *Failure {
		a, b := randPolyMat3(rng, cfg.Min, cfg.Max), randPolyMat3(rng, cfg.Min, cfg.Max)
		got, want := rank23.MulRing[ring.Polynomial](r, a, b), matrix.Naive3Ring[ring.Polynomial](r, a, b)
		if !matrix.Equal3[ring.Polynomial](r, got, want) {
			return newFailure(trial, a, b, got, want)
		}
		return nil
	}
}

// purityTrial calls the kernel twice on polynomial inputs, whose entries
// share backing arrays with the caller, and checks that the inputs are
// untouched and the two results agree.
func purityTrial(cfg Config) trialFunc {
	r := ring.Poly{}
	return func(trial int, rng *rand.Rand) *Failure {
		a, b := randPolyMat3(rng, cfg.Min, cfg.Max), randPolyMat3(rng, cfg.Min, cfg.Max)
		sa, sb := a.String(), b.String()

		first := rank23.MulRing[ring.Polynomial](r, a, b)
		second := rank23.MulRing[ring.Polynomial](r, a, b)
		switch {
		case a.String() != sa || b.String() != sb:
			f := newFailure(trial, a, b, first, second)
			f.Note = "inputs mutated"
			return f
		case !matrix.Equal3[ring.Polynomial](r, first, second):
			f := newFailure(trial, a, b, second, first)
			f.Note = "repeated call differs"
			return f
		}
		return nil
	}
}

// opCountCheck compares the measured counts with the scheme's constants.
func opCountCheck(c ring.OpCounts) CheckResult {
	res := CheckResult{Name: CheckOpCount, Trials: 1}
	if c.Muls != rank23.Multiplications || c.Additive() != rank23.Additions || c.Negs != 0 {
		res.Failures = 1
		res.FirstFailure = &Failure{
			Got:  c.String(),
			Want: ring.OpCounts{Adds: rank23.Additions, Muls: rank23.Multiplications}.String(),
			Note: "add and sub are compared as one total",
		}
	}

	return res
}

func newFailure[E any](trial int, a, b, got, want matrix.Mat3[E]) *Failure {
	return &Failure{Trial: trial, A: a.String(), B: b.String(), Got: got.String(), Want: want.String()}
}
