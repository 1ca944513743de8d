// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"sync/atomic"
)

// OpCounts is a snapshot of the operations a Counter has observed.
type OpCounts struct {
	Adds int64 `json:"adds" yaml:"adds"`
	Subs int64 `json:"subs" yaml:"subs"`
	Negs int64 `json:"negs" yaml:"negs"`
	Muls int64 `json:"muls" yaml:"muls"`
}

// Additive returns the number of additions and subtractions.
func (c OpCounts) Additive() int64 { return c.Adds + c.Subs }

// Total returns every counted operation, negations included.
func (c OpCounts) Total() int64 { return c.Adds + c.Subs + c.Negs + c.Muls }

// String implements fmt.Stringer.
func (c OpCounts) String() string {
	return fmt.Sprintf("mul=%d add=%d sub=%d neg=%d total=%d", c.Muls, c.Adds, c.Subs, c.Negs, c.Total())
}

// Counter wraps a Ring and counts the Add, Sub, Neg and Mul calls made
// through it. Zero, One and Equal are not counted. Counters are atomic,
// so one Counter may be shared by concurrent kernels.
type Counter[E any] struct {
	inner Ring[E]

	adds atomic.Int64
	subs atomic.Int64
	negs atomic.Int64
	muls atomic.Int64
}

// NewCounter wraps inner. It returns ErrNilRing if inner is nil.
func NewCounter[E any](inner Ring[E]) (*Counter[E], error) {
	if inner == nil {
		return nil, ringErrorf("NewCounter", ErrNilRing)
	}

	return &Counter[E]{inner: inner}, nil
}

// Counts returns the current totals.
func (c *Counter[E]) Counts() OpCounts {
	return OpCounts{
		Adds: c.adds.Load(),
		Subs: c.subs.Load(),
		Negs: c.negs.Load(),
		Muls: c.muls.Load(),
	}
}

// Reset zeroes every counter.
func (c *Counter[E]) Reset() {
	c.adds.Store(0)
	c.subs.Store(0)
	c.negs.Store(0)
	c.muls.Store(0)
}

func (c *Counter[E]) Zero() E { return c.inner.Zero() }

func (c *Counter[E]) One() E { return c.inner.One() }

func (c *Counter[E]) Add(a, b E) E {
	c.adds.Add(1)
	return c.inner.Add(a, b)
}

func (c *Counter[E]) Sub(a, b E) E {
	c.subs.Add(1)
	return c.inner.Sub(a, b)
}

func (c *Counter[E]) Neg(a E) E {
	c.negs.Add(1)
	return c.inner.Neg(a)
}

func (c *Counter[E]) Mul(a, b E) E {
	c.muls.Add(1)
	return c.inner.Mul(a, b)
}

func (c *Counter[E]) Equal(a, b E) bool { return c.inner.Equal(a, b) }
