// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// The order bound travels with each matrix; there is no global state.

package matrix

// MaxMatrixSize is the default upper bound on the matrix order enforced by New.
const MaxMatrixSize = 10_000

const panicMaxSizeInvalid = "matrix: WithMaxSize: max size must be non-negative"

// Option mutates internal options. Setters are applied in order; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxSize int // >= 0; MaxMatrixSize
}

// WithMaxSize overrides the maximum order accepted by New.
// Panics when n < 0 (programmer error).
func WithMaxSize(n int) Option {
	if n < 0 {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) {
		o.maxSize = n
	}
}

// NewOptions resolves opts on top of the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// MaxSize reports the configured maximum order.
func (o Options) MaxSize() int { return o.maxSize }

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{maxSize: MaxMatrixSize}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
