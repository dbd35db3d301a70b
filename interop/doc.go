// SPDX-License-Identifier: MIT

// Package interop bridges the float64 engines of this module to
// gonum.org/v1/gonum/mat.
//
//   - ToDense / ToVecDense copy into gonum storage.
//   - FromMatrix / FromVector copy any mat.Matrix / mat.Vector back.
//   - View adapts a *matrix.Matrix[float64] to mat.Matrix without copying,
//     so gonum routines can read it in place (RawMatrix fast path included).
//
// gonum forbids zero-sized Dense and VecDense values, so empty engines map
// to nil and nil or empty gonum values map to empty engines.
package interop
