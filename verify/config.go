// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// ErrInvalidConfig is returned by Config.Validate and Run for unusable settings.
var ErrInvalidConfig = errors.New("verify: invalid config")

// Bounds on the sampled integer range.
const (
	MinBound = -1 << 31
	MaxBound = 1 << 31
)

// Config controls one verification run.
//
// Fields:
//   - Trials         — randomized trials per check (each check draws its own).
//   - Seed           — base seed; trial i of a check always sees the same inputs.
//   - Min, Max       — inclusive integer range for sampled entries.
//   - Modulus        — modulus of the residue-ring check (≥ 1).
//   - FloatTolerance — relative and absolute tolerance of the float64 check.
//   - Workers        — goroutines running trials at once.
type Config struct {
	Trials         int     `json:"trials" yaml:"trials"`
	Seed           uint64  `json:"seed" yaml:"seed"`
	Min            int64   `json:"min" yaml:"min"`
	Max            int64   `json:"max" yaml:"max"`
	Modulus        uint64  `json:"modulus" yaml:"modulus"`
	FloatTolerance float64 `json:"float_tolerance" yaml:"float_tolerance"`
	Workers        int     `json:"workers" yaml:"workers"`
}

// DefaultConfig returns 1,000 trials over [-9, 9], mod 7, seed 0.
func DefaultConfig() Config {
	return Config{
		Trials:         1000,
		Seed:           0,
		Min:            -9,
		Max:            9,
		Modulus:        7,
		FloatTolerance: 1e-9,
		Workers:        runtime.GOMAXPROCS(0),
	}
}

// Validate reports the first unusable field, wrapped around ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Trials < 1:
		return verifyErrorf("Trials must be >= 1", ErrInvalidConfig)
	case c.Min > c.Max:
		return verifyErrorf("Min must be <= Max", ErrInvalidConfig)
	case c.Min < MinBound || c.Max > MaxBound:
		return verifyErrorf("Min and Max must lie in [-2^31, 2^31]", ErrInvalidConfig)
	case c.Modulus < 1:
		return verifyErrorf("Modulus must be >= 1", ErrInvalidConfig)
	case c.FloatTolerance < 0 || math.IsNaN(c.FloatTolerance) || math.IsInf(c.FloatTolerance, 0):
		return verifyErrorf("FloatTolerance must be finite and >= 0", ErrInvalidConfig)
	case c.Workers < 1:
		return verifyErrorf("Workers must be >= 1", ErrInvalidConfig)
	}

	return nil
}

// verifyErrorf wraps err with a tag, preserving it for errors.Is.
func verifyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
