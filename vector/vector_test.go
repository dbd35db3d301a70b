// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/katalvlaran/linalg/dim"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

func TestFactories(t *testing.T) {
	t.Parallel()

	empty := vector.New[float64]()
	require.Equal(t, 0, empty.Len())
	require.True(t, empty.Rows().EqualValue(0))

	z := vector.NewZeros[float64](dim.NewRow(fixtureRows))
	require.Equal(t, uint(fixtureRows), z.Rows().Get())
	require.Equal(t, fixtureRows, z.Len())
	for x := range z.Elements() {
		require.Zero(t, x)
	}

	src := []int{4, 5, 6}
	v := vector.FromSlice(src)
	src[0] = 99 // FromSlice copies
	require.Equal(t, []int{4, 5, 6}, v.Values())
	require.Equal(t, 3, v.Rows().Int())
}

func TestCopyIsDeep(t *testing.T) {
	t.Parallel()

	v := randVector(t, 1)
	c := vector.Copy(v)
	require.True(t, c.Equal(v))

	c.Data()[0] = -1
	require.False(t, c.Equal(v), "mutating the copy must not touch the source")

	again := vector.FromSlice(v.Data())
	require.True(t, again.Equal(v))
}

func TestMoveErasesSource(t *testing.T) {
	t.Parallel()

	v := vector.FromSlice([]float64{1, 2, 3})
	want := v.Clone()
	moved := v.Move()

	require.True(t, moved.Equal(want))
	require.Equal(t, 0, v.Len())
	require.True(t, v.Rows().EqualValue(0))
}

func TestAtSet(t *testing.T) {
	t.Parallel()

	v := vector.NewZeros[int](dim.NewRow(2))
	require.NoError(t, v.Set(1, 7))

	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 7, x)

	_, err = v.At(2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.ErrorIs(t, v.Set(5, 1), vector.ErrOutOfRange)
}

func TestErase(t *testing.T) {
	t.Parallel()

	v := randVector(t, 2)
	v.Erase()
	require.Equal(t, 0, v.Len())
	require.True(t, v.Rows().EqualValue(0))
	require.Empty(t, v.Values())
}

func TestEquality(t *testing.T) {
	t.Parallel()

	a := vector.FromSlice([]int{1, 2, 3})
	b := vector.FromSlice([]int{1, 2, 3})
	short := vector.FromSlice([]int{1, 2})

	require.True(t, a.Equal(a), "reflexive")
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a), "symmetric")
	require.False(t, a.Equal(short), "shape is checked first")
	require.True(t, a.NotEqual(short))

	b.Data()[2] = 4
	require.True(t, a.NotEqual(b))
}

func TestIteration(t *testing.T) {
	t.Parallel()

	v := vector.FromSlice([]int{1, 2, 3})

	sum := 0
	for x := range v.Elements() {
		sum += x
	}
	require.Equal(t, 6, sum)

	// Restartable: a second pass sees the same data.
	idx := 0
	for i, x := range v.All() {
		require.Equal(t, idx, i)
		require.Equal(t, idx+1, x)
		idx++
	}
	require.Equal(t, 3, idx)

	for _, p := range v.Refs() {
		*p *= 10
	}
	require.Equal(t, []int{10, 20, 30}, v.Values())

	// Early break stops the walk.
	seen := 0
	for range v.Refs() {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, " | 1 | 2 | \n", vector.FromSlice([]int{1, 2}).String())
	require.Equal(t, " | 0.500000 | \n", vector.FromSlice([]float64{0.5}).String())
}
