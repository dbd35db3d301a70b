// SPDX-License-Identifier: MIT

// Package strong - trait kernels.
//
// Purpose:
//   - One generic function per operator, written only against Host.
//   - Hosts forward to these from one-line methods; no arithmetic is ever
//     duplicated across strong types.
//
// Type inference:
//   - U cannot be inferred from Host's methods, so hosts instantiate
//     kernels explicitly, e.g. strong.Add[Row, uint](a, b).

package strong

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// ---------- Step ----------

// Inc adds one to *p and returns the updated value.
func Inc[S Host[S, U], U Scalar](p *S) S {
	*p = (*p).Wrap((*p).Get() + 1)

	return *p
}

// PostInc adds one to *p and returns the value held before the step.
func PostInc[S Host[S, U], U Scalar](p *S) S {
	prev := *p
	*p = prev.Wrap(prev.Get() + 1)

	return prev
}

// Dec subtracts one from *p and returns the updated value.
// Unsigned hosts wrap below zero; callers must not step past 0.
func Dec[S Host[S, U], U Scalar](p *S) S {
	*p = (*p).Wrap((*p).Get() - 1)

	return *p
}

// PostDec subtracts one from *p and returns the value held before the step.
func PostDec[S Host[S, U], U Scalar](p *S) S {
	prev := *p
	*p = prev.Wrap(prev.Get() - 1)

	return prev
}

// ---------- Additive / multiplicative ----------

// Add returns a+b.
func Add[S Host[S, U], U Scalar](a, b S) S { return a.Wrap(a.Get() + b.Get()) }

// Pos returns +a.
func Pos[S Host[S, U], U Scalar](a S) S { return a.Wrap(+a.Get()) }

// Sub returns a-b.
func Sub[S Host[S, U], U Scalar](a, b S) S { return a.Wrap(a.Get() - b.Get()) }

// Neg returns -a (modulo 2^n for unsigned hosts).
func Neg[S Host[S, U], U Scalar](a S) S { return a.Wrap(-a.Get()) }

// Mul returns a*b.
func Mul[S Host[S, U], U Scalar](a, b S) S { return a.Wrap(a.Get() * b.Get()) }

// Div returns a/b. Integer division by zero panics as in plain Go.
func Div[S Host[S, U], U Scalar](a, b S) S { return a.Wrap(a.Get() / b.Get()) }

// Mod returns a%b.
func Mod[S Host[S, U], U constraints.Integer](a, b S) S { return a.Wrap(a.Get() % b.Get()) }

// ---------- Bitwise ----------

// Not returns ^a.
func Not[S Host[S, U], U constraints.Integer](a S) S { return a.Wrap(^a.Get()) }

// And returns a&b.
func And[S Host[S, U], U constraints.Integer](a, b S) S { return a.Wrap(a.Get() & b.Get()) }

// Or returns a|b.
func Or[S Host[S, U], U constraints.Integer](a, b S) S { return a.Wrap(a.Get() | b.Get()) }

// Xor returns a^b.
func Xor[S Host[S, U], U constraints.Integer](a, b S) S { return a.Wrap(a.Get() ^ b.Get()) }

// Shl returns a<<b. A negative count panics.
func Shl[S Host[S, U], U constraints.Integer](a, b S) S { return a.Wrap(a.Get() << b.Get()) }

// Shr returns a>>b. A negative count panics.
func Shr[S Host[S, U], U constraints.Integer](a, b S) S { return a.Wrap(a.Get() >> b.Get()) }

// ---------- Ordering ----------

// Compare orders a against b: -1, 0 or +1.
func Compare[S Host[S, U], U Scalar](a, b S) int { return cmp.Compare(a.Get(), b.Get()) }

// CompareValue orders a against a raw value v.
func CompareValue[S Host[S, U], U Scalar](a S, v U) int { return cmp.Compare(a.Get(), v) }

// Equal reports a == b.
func Equal[S Host[S, U], U Scalar](a, b S) bool { return a.Get() == b.Get() }

// Less reports a < b.
func Less[S Host[S, U], U Scalar](a, b S) bool { return a.Get() < b.Get() }

// LessOrEqual reports a <= b.
func LessOrEqual[S Host[S, U], U Scalar](a, b S) bool { return a.Get() <= b.Get() }

// Greater reports a > b.
func Greater[S Host[S, U], U Scalar](a, b S) bool { return a.Get() > b.Get() }

// GreaterOrEqual reports a >= b.
func GreaterOrEqual[S Host[S, U], U Scalar](a, b S) bool { return a.Get() >= b.Get() }
