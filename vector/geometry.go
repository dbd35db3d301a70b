// SPDX-License-Identifier: MIT

// Package vector - norms, direction predicates and products.
//
// Determinism: all loops run 0..n-1; sums accumulate in T.

package vector

import "github.com/katalvlaran/linalg/num"

// crossLen is the only length for which Cross is defined.
const crossLen = 3

// Magnitude returns the Euclidean norm sqrt(Σ x_i²), computed at T's own
// precision. Integer norms are truncated.
// Complexity: O(n).
func (v *Vector[T]) Magnitude() T {
	var sum T
	for _, x := range v.data {
		sum += x * x
	}

	return num.Sqrt(sum)
}

// Normalize divides every element by the current magnitude, in place.
//
// There is no zero guard: a float zero vector becomes all NaN. Integer
// division by zero has no such value, so an integer zero vector is left
// as is.
func (v *Vector[T]) Normalize() {
	mag := v.Magnitude()
	if mag == 0 && num.IsInteger[T]() {
		return
	}
	for i := range v.data {
		v.data[i] /= mag
	}
}

// Opposite reports whether o has v's length and o[i] == -v[i] for every i.
func (v *Vector[T]) Opposite(o *Vector[T]) bool {
	if len(o.data) != len(v.data) {
		return false
	}
	for i, x := range v.data {
		if o.data[i] != -x {
			return false
		}
	}

	return true
}

// Parallel reports whether every ratio v[i]/o[i] equals v[0]/o[0] within
// the tolerance (default: the element epsilon). The sign of the common
// ratio is not inspected.
func (v *Vector[T]) Parallel(o *Vector[T], opts ...Option) bool {
	return v.ratiosAgree(o, false, gatherOptions(opts))
}

// AntiParallel is Parallel over negated ratios -(v[i]/o[i]).
//
// Negating both sides of the comparison leaves the differences unchanged,
// so AntiParallel and Parallel agree on every input.
func (v *Vector[T]) AntiParallel(o *Vector[T], opts ...Option) bool {
	return v.ratiosAgree(o, true, gatherOptions(opts))
}

// ratiosAgree is the shared kernel of Parallel/AntiParallel.
// Empty vectors, length mismatch, zero integer denominators and NaN
// differences all report false.
func (v *Vector[T]) ratiosAgree(o *Vector[T], negate bool, opt Options) bool {
	if len(o.data) != len(v.data) || len(v.data) == 0 {
		return false
	}
	tol := float64(num.Epsilon[T]())
	if opt.hasTolerance {
		tol = opt.tolerance
	}

	ref, ok := ratio(v.data[0], o.data[0], negate)
	if !ok {
		return false
	}
	for i := range v.data {
		r, ok := ratio(v.data[i], o.data[i], negate)
		if !ok {
			return false
		}
		d := num.Abs(r - ref)
		if num.IsNaN(d) || float64(d) > tol {
			return false
		}
	}

	return true
}

// ratio returns a/b (negated on request). ok is false when b is an integer zero.
func ratio[T num.Element](a, b T, negate bool) (T, bool) {
	if b == 0 && num.IsInteger[T]() {
		return 0, false
	}
	r := a / b
	if negate {
		r = -r
	}

	return r, true
}

// Dot returns Σ v[i]*o[i], or 0 when the lengths differ.
// Complexity: O(n).
func (v *Vector[T]) Dot(o *Vector[T]) T {
	var sum T
	if len(o.data) != len(v.data) {
		return sum
	}
	for i, x := range v.data {
		sum += o.data[i] * x
	}

	return sum
}

// Cross returns the 3D cross product v × o. Any length other than 3 on
// either side yields an empty vector.
func (v *Vector[T]) Cross(o *Vector[T]) *Vector[T] {
	if len(v.data) != len(o.data) || len(v.data) != crossLen {
		return New[T]()
	}
	a, b := v.data, o.data

	return FromSlice([]T{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	})
}
