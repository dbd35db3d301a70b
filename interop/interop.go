// SPDX-License-Identifier: MIT

package interop

import (
	"slices"

	"github.com/katalvlaran/linalg/dim"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies m into a new *mat.Dense. Returns nil when m has no cells.
func ToDense(m *matrix.Matrix[float64]) *mat.Dense {
	r, c := m.Rows().Int(), m.Cols().Int()
	if r == 0 || c == 0 {
		return nil
	}

	return mat.NewDense(r, c, slices.Clone(m.Raw()))
}

// FromMatrix copies any mat.Matrix into a new engine matrix. A nil or empty
// source yields 0×0.
func FromMatrix(a mat.Matrix) *matrix.Matrix[float64] {
	if a == nil {
		return matrix.New[float64]()
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return matrix.New[float64]()
	}
	out := matrix.NewZeros[float64](dim.NewRow(uint(r)), dim.NewColumn(uint(c)))
	dst := out.Raw()

	// Fast path: contiguous rows straight from the raw buffer.
	if rm, ok := a.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		for i := 0; i < r; i++ {
			copy(dst[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}

		return out
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst[i*c+j] = a.At(i, j)
		}
	}

	return out
}

// ToVecDense copies v into a new *mat.VecDense. Returns nil when v is empty.
func ToVecDense(v *vector.Vector[float64]) *mat.VecDense {
	if v.Len() == 0 {
		return nil
	}

	return mat.NewVecDense(v.Len(), v.Values())
}

// FromVector copies any mat.Vector into a new engine vector. A nil source
// yields an empty vector.
func FromVector(x mat.Vector) *vector.Vector[float64] {
	if x == nil {
		return vector.New[float64]()
	}
	out := vector.NewZeros[float64](dim.NewRow(uint(x.Len())))
	for i, p := range out.Refs() {
		*p = x.AtVec(i)
	}

	return out
}
