// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the strict kernels.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper (internal).

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the absolute tolerance used by AllClose.
const DefaultEpsilon = 1e-9

// ---------- Internal panic messages ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build it
// with ...Option.
type Options struct {
	eps float64 // absolute tolerance, >= 0
}

// WithEpsilon sets the absolute tolerance used by AllClose.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
