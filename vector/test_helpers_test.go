// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   - Deterministic random fill (fixed seeds) so failures reproduce.
//   - Values stay in (0, 1] so no ratio has a zero denominator.

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/dim"
	"github.com/katalvlaran/linalg/vector"
)

// fixtureRows is the length of the shared random fixture.
const fixtureRows = 20

// fillRand overwrites every element of v with a value in (0, 1].
func fillRand(tb testing.TB, v *vector.Vector[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for _, p := range v.Refs() {
		*p = 1 - rng.Float64() // Float64 is [0,1); flip to (0,1]
	}
}

// randVector returns a fresh fixtureRows-long random vector.
func randVector(tb testing.TB, seed int64) *vector.Vector[float64] {
	tb.Helper()
	v := vector.NewZeros[float64](dim.NewRow(fixtureRows))
	fillRand(tb, v, seed)

	return v
}
