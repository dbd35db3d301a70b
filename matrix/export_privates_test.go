// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported symbols to matrix_test only.

// Panic message exports to avoid magic strings in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// GatheredEpsilon_TestOnly returns the epsilon resolved from opts.
func GatheredEpsilon_TestOnly(opts ...Option) float64 {
	return gatherOptions(opts...).eps
}
