// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumDiffHadamard(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})

	tests := []struct {
		name string
		fn   func(a, b *matrix.Matrix[int]) (*matrix.Matrix[int], error)
		want [][]int
	}{
		{"Sum", matrix.Sum[int], [][]int{{6, 8}, {10, 12}}},
		{"Diff", matrix.Diff[int], [][]int{{-4, -4}, {-4, -4}}},
		{"Hadamard", matrix.Hadamard[int], [][]int{{5, 12}, {21, 32}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.fn(a, b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Values())

			_, err = tc.fn(a, mustRows(t, [][]int{{1, 2}}))
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

			_, err = tc.fn(nil, b)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

func TestStrictVersusLenient(t *testing.T) {
	t.Parallel()

	a := randMatrix(t, 20)
	b := randMatrix(t, 21)

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	require.True(t, sum.Equal(a.Add(b)))

	diff, err := matrix.Diff(a, b)
	require.NoError(t, err)
	require.True(t, diff.Equal(a.Sub(b)))

	// Where the lenient form degrades, the strict form fails.
	short := zeros(fixtureRows, 1)
	require.True(t, a.Add(short).Equal(a))
	_, err = matrix.Sum(a, short)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestProduct(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{5, 6}, {7, 8}})
	got, err := matrix.Product(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, got.Values())

	// Equal but incompatible operands: no self-square fallback.
	r := mustRows(t, [][]float64{{2, 3}})
	_, err = matrix.Product(r, r.Clone())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "Product: ")

	_, err = matrix.Product(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestProductTransposeLaw(t *testing.T) {
	t.Parallel()

	// (A·B)ᵀ == Bᵀ·Aᵀ
	a := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	ab, err := matrix.Product(a, b)
	require.NoError(t, err)
	abT, err := matrix.Transposed(ab)
	require.NoError(t, err)

	aT, _ := matrix.Transposed(a)
	bT, _ := matrix.Transposed(b)
	bTaT, err := matrix.Product(bT, aT)
	require.NoError(t, err)
	require.True(t, abT.Equal(bTaT))

	// Transposed leaves its input untouched.
	requireShape(t, a, 2, 3)
}

func TestScale(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, -2}})
	got, err := matrix.Scale(a, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{3, -6}}, got.Values())

	_, err = matrix.Scale[int](nil, 3)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	y, err := matrix.MatVec(a, vector.FromSlice([]int{1, 0, -1}))
	require.NoError(t, err)
	require.Equal(t, []int{-2, -2}, y.Values())
	require.Equal(t, uint(2), y.Rows().Get())

	// Agrees with Product against a single column.
	x := []int{3, 1, 2}
	p, err := matrix.Product(a, matrix.FromColumn(x))
	require.NoError(t, err)
	y, err = matrix.MatVec(a, vector.FromSlice(x))
	require.NoError(t, err)
	for i, v := range y.All() {
		want, _ := p.At(i, 0)
		require.Equal(t, want, v)
	}

	_, err = matrix.MatVec(a, vector.FromSlice([]int{1}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, vector.FromSlice([]int{1}))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.NotPanics(t, func() { _, err = matrix.MatVec(a, nil) })
	require.ErrorIs(t, err, matrix.ErrNilVector)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2}, {3, 4 + 1e-12}})
	c := mustRows(t, [][]float64{{1, 2}, {3, 4.01}})

	ok, err := matrix.AllClose(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, c)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, c, matrix.WithEpsilon(0.1))
	require.NoError(t, err)
	require.True(t, ok)

	nan := mustRows(t, [][]float64{{1, 2}, {3, math.NaN()}})
	ok, err = matrix.AllClose(nan, nan)
	require.NoError(t, err)
	require.False(t, ok, "NaN is never close")

	_, err = matrix.AllClose(a, zeros(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAllCloseUnsigned(t *testing.T) {
	t.Parallel()

	// A smaller left operand must not wrap around.
	a := mustRows(t, [][]uint{{1, 5}})
	b := mustRows(t, [][]uint{{2, 5}})

	ok, err := matrix.AllClose(a, b)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, matrix.WithEpsilon(1))
	require.NoError(t, err)
	require.True(t, ok)
}
