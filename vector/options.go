// SPDX-License-Identifier: MIT

// Package vector: functional options for the direction predicates.
//
// Defaults:
//   - the tolerance of Parallel/AntiParallel is the machine epsilon of the
//     element type (num.Epsilon[T]); integers therefore compare exactly.
//
// WithX constructors panic only on nonsensical values (programmer error).

package vector

import "math"

const panicToleranceInvalid = "vector: WithTolerance: tol must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the numeric policy of the direction predicates.
type Options struct {
	tolerance    float64 // absolute bound on |ratio_i - ratio_0|
	hasTolerance bool    // false: use the element epsilon
}

// WithTolerance overrides the ratio tolerance of Parallel/AntiParallel.
// Panics if tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tolerance = tol
		o.hasTolerance = true
	}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
