// SPDX-License-Identifier: MIT

// Package rank23: functional configuration for the batch and recursive
// drivers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state; worker count never changes results.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package rank23

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultChunkSize is the number of pairs one MulBatch task handles.
	DefaultChunkSize = 256

	// DefaultLeafSize is the largest n that MulRecursive multiplies with the
	// naive product instead of splitting into 3×3 blocks.
	DefaultLeafSize = 27
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "rank23: WithWorkers: n must be >= 1"
	panicChunkSizeInvalid = "rank23: WithChunkSize: n must be >= 1"
	panicLeafSizeInvalid  = "rank23: WithLeafSize: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers   int // >= 1; default GOMAXPROCS
	chunkSize int // >= 1; DefaultChunkSize
	leafSize  int // >= 1; DefaultLeafSize
}

// Workers returns the resolved concurrency limit.
func (o Options) Workers() int { return o.workers }

// ChunkSize returns the resolved batch chunk size.
func (o Options) ChunkSize() int { return o.chunkSize }

// LeafSize returns the resolved recursion cutoff.
func (o Options) LeafSize() int { return o.leafSize }

// WithWorkers bounds the number of goroutines MulBatch runs at once.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkSize sets how many pairs one MulBatch task multiplies.
// Larger chunks amortize scheduling; smaller chunks balance better.
// Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *Options) { o.chunkSize = n }
}

// WithLeafSize sets the size at or below which MulRecursive stops
// splitting. Panics if n < 1.
func WithLeafSize(n int) Option {
	if n < 1 {
		panic(panicLeafSizeInvalid)
	}

	return func(o *Options) { o.leafSize = n }
}

// NewOptions resolves opts on top of the defaults. Exposed for callers
// that want to inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults. Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		leafSize:  DefaultLeafSize,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
