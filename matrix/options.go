// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// Mirrors package vector: a compile-time maximum (MaxDim) that a call may
// lower with WithMaxDim, never raise.
package matrix

// MaxDim is the largest dimension any Matrix may be constructed with.
const MaxDim = 10000

const (
	panicMaxDimInvalid = "matrix: WithMaxDim: bound must be in [0, MaxDim]"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxDim int // upper bound on requested dimension; defaults to MaxDim
}

// WithMaxDim lowers the maximum dimension accepted by a constructor call.
// Panics when n is negative or larger than MaxDim (programmer error).
func WithMaxDim(n int) Option {
	if n < 0 || n > MaxDim {
		panic(panicMaxDimInvalid)
	}

	return func(o *Options) { o.maxDim = n }
}

// MaxDimOf reports the bound that the given options resolve to.
func MaxDimOf(opts ...Option) int {
	return gatherOptions(opts...).maxDim
}

func defaultOptions() Options {
	return Options{maxDim: MaxDim}
}

// gatherOptions applies user options over the defaults; nil entries are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
