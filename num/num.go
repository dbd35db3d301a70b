// SPDX-License-Identifier: MIT

// Package num holds the element constraint shared by the vector and matrix
// engines, plus the few generic numeric helpers they need (square root,
// machine epsilon, absolute value, formatting).
//
// Element types are Go's integer and floating-point kinds. Helpers work
// through plain conversions, so named types (~float64 and friends) are
// supported without a type switch.
package num

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Element is the set of types a Vector or Matrix may hold.
type Element interface {
	constraints.Integer | constraints.Float
}

// Machine epsilons for the two float widths.
const (
	Epsilon32 = 0x1p-23 // float32: 2^-23
	Epsilon64 = 0x1p-52 // float64: 2^-52
)

// IsInteger reports whether T is an integer kind.
func IsInteger[T Element]() bool {
	var one T = 1

	return one/2 == 0
}

// IsFloat32 reports whether T is a float kind with 32-bit precision.
func IsFloat32[T Element]() bool {
	if IsInteger[T]() {
		return false
	}
	var one T = 1
	tiny := 0x1p-30 // distinguishable from 1 only at 64-bit precision

	return T(one+T(tiny)) == one
}

// Epsilon returns the machine epsilon of T: 2^-23 for float32 kinds,
// 2^-52 for float64 kinds and 0 for integers.
func Epsilon[T Element]() T {
	switch {
	case IsInteger[T]():
		return 0
	case IsFloat32[T]():
		eps := float32(Epsilon32)
		return T(eps)
	default:
		eps := float64(Epsilon64)
		return T(eps)
	}
}

// Sqrt returns the square root of x at T's precision. Integer results are
// truncated toward zero; negative inputs yield NaN for floats.
func Sqrt[T Element](x T) T {
	if IsFloat32[T]() {
		// Rounding the float64 root once to float32 gives the correctly
		// rounded float32 result.
		return T(float32(math.Sqrt(float64(x))))
	}

	return T(math.Sqrt(float64(x)))
}

// Abs returns |x|. Unsigned values are returned unchanged.
func Abs[T Element](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// IsNaN reports whether x is a NaN. Always false for integers.
func IsNaN[T Element](x T) bool {
	return x != x
}

// Format renders x the way the text dumps expect: integers in decimal,
// floats with six fractional digits.
func Format[T Element](x T) string {
	if IsInteger[T]() {
		return fmt.Sprintf("%d", any(x))
	}

	return fmt.Sprintf("%f", any(x))
}
