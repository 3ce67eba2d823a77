// SPDX-License-Identifier: MIT

// Package vector: functional configuration for constructors.
// This file defines:
//   - the compile-time maximum length (MaxLen),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package vector

// MaxLen is the largest length any Vector may be constructed with.
// A per-call bound may be lowered with WithMaxLen but never raised above it.
const MaxLen = 100000000

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxLenInvalid = "vector: WithMaxLen: bound must be in [0, MaxLen]"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	maxLen int // upper bound on requested length; defaults to MaxLen
}

// WithMaxLen lowers the maximum length accepted by a constructor call.
//
// Panics when n is negative or larger than MaxLen.
func WithMaxLen(n int) Option {
	if n < 0 || n > MaxLen {
		panic(panicMaxLenInvalid)
	}

	return func(o *Options) { o.maxLen = n }
}

// MaxLenOf reports the bound that the given options resolve to.
func MaxLenOf(opts ...Option) int {
	return gatherOptions(opts...).maxLen
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{maxLen: MaxLen}
}

// gatherOptions applies user options over the defaults in order.
// Nil options are skipped so callers may pass conditionally-built slices.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
