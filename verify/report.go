// SPDX-License-Identifier: MIT

package verify

import (
	"time"

	"github.com/katalvlaran/rank23/ring"
)

// Check names, in the order Run executes them.
const (
	CheckFixed   = "fixed"
	CheckInt64   = "int64"
	CheckMod     = "mod"
	CheckFloat64 = "float64"
	CheckPoly    = "poly"
	CheckPurity  = "purity"
	CheckOpCount = "opcount"
)

// Failure describes the first mismatching trial of a check.
// Matrices are rendered with their String method, one row per line.
type Failure struct {
	Trial int    `json:"trial" yaml:"trial"`
	A     string `json:"a" yaml:"a"`
	B     string `json:"b" yaml:"b"`
	Got   string `json:"got" yaml:"got"`
	Want  string `json:"want" yaml:"want"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// CheckResult summarizes one check. FirstFailure is the failing trial with
// the lowest index, so it does not depend on scheduling.
type CheckResult struct {
	Name         string   `json:"name" yaml:"name"`
	Trials       int      `json:"trials" yaml:"trials"`
	Failures     int      `json:"failures" yaml:"failures"`
	FirstFailure *Failure `json:"first_failure,omitempty" yaml:"first_failure,omitempty"`
}

// Passed reports whether the check saw no failures.
func (c CheckResult) Passed() bool { return c.Failures == 0 }

// Report is the outcome of Run. A mismatch is recorded here, never
// returned as an error.
type Report struct {
	RunID   string        `json:"run_id" yaml:"run_id"`
	Config  Config        `json:"config" yaml:"config"`
	Checks  []CheckResult `json:"checks" yaml:"checks"`
	Counts  ring.OpCounts `json:"counts" yaml:"counts"`
	Passed  bool          `json:"passed" yaml:"passed"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Check returns the result named name, if present.
func (r Report) Check(name string) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}

	return CheckResult{}, false
}

// TotalTrials sums the trials of every check.
func (r Report) TotalTrials() int {
	n := 0
	for _, c := range r.Checks {
		n += c.Trials
	}

	return n
}
