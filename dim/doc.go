// SPDX-License-Identifier: MIT

// Package dim defines the strong dimension types Row and Column.
//
// Row and Column are two instantiations of Dimension over distinct phantom
// kinds. Both wrap a uint, yet neither is assignable to the other, so a
// call like matrix.NewZeros[float64](cols, rows) with swapped arguments does
// not compile.
//
// Operators come from package strong: a Dimension composes the step
// traits, binary addition and subtraction, and Comparable. There are no
// implicit conversions; use Get (uint) or Int (int) explicitly.
//
// Underflow: Dec/Sub below zero wraps around like any Go uint. Guarding
// against it is the caller's responsibility.
package dim
