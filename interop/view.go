// SPDX-License-Identifier: MIT

package interop

import (
	"github.com/katalvlaran/linalg/matrix"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// View exposes a *matrix.Matrix[float64] as a read-only mat.Matrix. Reads
// go straight to the engine storage; a View must not outlive a reshape of
// its matrix (Transpose, Erase, Move or XxxAssign).
type View struct {
	m *matrix.Matrix[float64]
}

// Compile-time assertions for gonum conformance.
var (
	_ mat.Matrix      = View{}
	_ mat.RawMatrixer = View{}
)

// NewView wraps m without copying.
func NewView(m *matrix.Matrix[float64]) View { return View{m: m} }

// Dims returns the engine extents as plain ints.
func (v View) Dims() (r, c int) { return v.m.Rows().Int(), v.m.Cols().Int() }

// At returns the element at (i,j). It panics with mat.ErrIndexOutOfRange
// outside the extents, as gonum matrices do.
func (v View) At(i, j int) float64 {
	x, err := v.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return x
}

// T returns the implicit transpose.
func (v View) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// RawMatrix lets gonum take its BLAS fast path over the row-major buffer.
func (v View) RawMatrix() blas64.General {
	r, c := v.Dims()
	stride := max(c, 1)

	return blas64.General{Rows: r, Cols: c, Stride: stride, Data: v.m.Raw()}
}
