// SPDX-License-Identifier: MIT

// Package vector: functional configuration for vector construction.
//
// Design goals:
//   - No global state: the size bound travels with each vector.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); user-supplied sizes and start indices are
//     validated by New and reported as sentinel errors.

package vector

// MaxVectorSize is the default upper bound on Len() enforced by New.
const MaxVectorSize = 100_000_000

// DefaultStartIndex is the start index used when WithStartIndex is not given.
const DefaultStartIndex = 0

const panicMaxSizeInvalid = "vector: WithMaxSize: max size must be non-negative"

// Option mutates internal options. Setters are applied in order; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxSize    int // >= 0; MaxVectorSize
	startIndex int // validated by New, not by the setter
}

// WithMaxSize overrides the maximum vector length accepted by New.
// Panics when n < 0.
func WithMaxSize(n int) Option {
	if n < 0 {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) {
		o.maxSize = n
	}
}

// WithStartIndex sets the logical offset of the first element.
// A negative value is not a programmer error here: New reports it as
// ErrInvalidStartIndex so callers can handle it at run time.
func WithStartIndex(i int) Option {
	return func(o *Options) {
		o.startIndex = i
	}
}

// NewOptions resolves opts on top of the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// MaxSize reports the configured maximum length.
func (o Options) MaxSize() int { return o.maxSize }

// StartIndex reports the configured start index.
func (o Options) StartIndex() int { return o.startIndex }

// gatherOptions applies user setters on top of the defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxSize:    MaxVectorSize,
		startIndex: DefaultStartIndex,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
