// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (fixed seeds) so failures reproduce.
//   - Values stay in (0, 1] and finite so no numeric edge case leaks into
//     tests that are about shape.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/dim"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// Shape of the shared random fixture.
const (
	fixtureRows = 10
	fixtureCols = 20
)

// shape is shorthand for a strongly typed (rows, cols) pair.
func shape(r, c uint) (dim.Row, dim.Column) { return dim.NewRow(r), dim.NewColumn(c) }

// zeros allocates an r×c float64 matrix of zeros.
func zeros(r, c uint) *matrix.Matrix[float64] { return matrix.NewZeros[float64](shape(r, c)) }

// fillRand overwrites every cell of m with a value in (0, 1].
func fillRand(tb testing.TB, m *matrix.Matrix[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for _, row := range m.All() {
		for j := range row {
			row[j] = 1 - rng.Float64() // Float64 is [0,1); flip to (0,1]
		}
	}
}

// randMatrix returns a fresh fixtureRows×fixtureCols random matrix.
func randMatrix(tb testing.TB, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	m := zeros(fixtureRows, fixtureCols)
	fillRand(tb, m, seed)

	return m
}

// mustRows builds a matrix from literal rows or fails the test.
func mustRows[T int | int64 | uint | float32 | float64](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// requireShape asserts the strong extents of m.
func requireShape[T int | int64 | uint | float32 | float64](tb testing.TB, m *matrix.Matrix[T], r, c uint) {
	tb.Helper()
	require.Equal(tb, r, m.Rows().Get(), "rows")
	require.Equal(tb, c, m.Cols().Get(), "cols")
}
