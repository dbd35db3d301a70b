// SPDX-License-Identifier: MIT
// Package matrix - strict linear-algebra kernels.
//
// Purpose:
//   - Offer fail-fast counterparts of the lenient methods: every kernel
//     validates its operands and returns a sentinel wrapped with an
//     operation tag instead of degrading.
//   - Operands are never mutated; each call allocates exactly one result.
//
// Errors:
//   - ErrNilMatrix / ErrNilVector for a nil operand, ErrDimensionMismatch
//     for incompatible extents. All match with errors.Is through the op tag.

package matrix

import (
	"math"

	"github.com/katalvlaran/linalg/num"
	"github.com/katalvlaran/linalg/vector"
)

// Operation name constants for unified error wrapping.
const (
	opSum        = "Sum"
	opDiff       = "Diff"
	opProduct    = "Product"
	opHadamard   = "Hadamard"
	opScale      = "Scale"
	opTransposed = "Transposed"
	opAllClose   = "AllClose"
	opMatVec     = "MatVec"
)

// zipStrict computes out[idx] = f(a[idx], b[idx]) for same-shape operands.
func zipStrict[T num.Element](a, b *Matrix[T], opTag string, f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := NewZeros[T](a.rows, a.cols)
	for idx := range a.data { // deterministic 0..n-1
		out.data[idx] = f(a.data[idx], b.data[idx])
	}

	return out, nil
}

// Sum returns A + B. Shapes must match exactly.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sum[T num.Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipStrict(a, b, opSum, func(x, y T) T { return x + y })
}

// Diff returns A - B. Shapes must match exactly.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Diff[T num.Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipStrict(a, b, opDiff, func(x, y T) T { return x - y })
}

// Hadamard returns the elementwise product A ⊙ B. Shapes must match exactly.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Hadamard[T num.Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipStrict(a, b, opHadamard, func(x, y T) T { return x * y })
}

// Product returns the matrix product A·B, an a.Rows × b.Cols matrix.
// Unlike Mul it never falls back to the elementwise square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*k*c).
func Product[T num.Element](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	return a.product(b), nil
}

// Scale returns alpha·A.
//
// Errors: ErrNilMatrix.
func Scale[T num.Element](a *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return a.MulScalar(alpha), nil
}

// Transposed returns a new matrix holding Aᵀ; A is left untouched.
//
// Errors: ErrNilMatrix.
func Transposed[T num.Element](a *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTransposed, err)
	}

	return a.transposed(), nil
}

// MatVec returns y = A·x, a vector of length a.Rows.
//
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch (x.Len() != a.Cols).
// Complexity: O(r*c).
func MatVec[T num.Element](a *Matrix[T], x *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if x == nil {
		return nil, matrixErrorf(opMatVec, ErrNilVector)
	}
	if err := ValidateVecLen(a, x.Len()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := vector.NewZeros[T](a.rows)
	xs, ys := x.Data(), y.Data()
	for i, row := range a.All() {
		var sum T
		for j, v := range row {
			sum += v * xs[j]
		}
		ys[i] = sum
	}

	return y, nil
}

// AllClose reports whether A and B have the same extents and
// |A[i,j] - B[i,j]| <= eps for every cell (eps from WithEpsilon, default
// DefaultEpsilon). NaN never compares close.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose[T num.Element](a, b *Matrix[T], opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	eps := gatherOptions(opts...).eps
	for idx, x := range a.data {
		y := b.data[idx]
		// Subtract the smaller from the larger so unsigned types cannot wrap.
		d := x - y
		if y > x {
			d = y - x
		}
		fd := float64(d)
		if math.IsNaN(fd) || fd > eps {
			return false, nil
		}
	}

	return true, nil
}
