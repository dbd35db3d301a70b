// SPDX-License-Identifier: MIT

package strong

// ---------- Step traits (pointer receivers; mutate the host) ----------

// PreIncrementable hosts expose Inc: add one, return the updated value.
type PreIncrementable[S any] interface {
	Inc() S
}

// PostIncrementable hosts expose PostInc: add one, return the previous value.
type PostIncrementable[S any] interface {
	PostInc() S
}

// PreDecrementable hosts expose Dec: subtract one, return the updated value.
type PreDecrementable[S any] interface {
	Dec() S
}

// PostDecrementable hosts expose PostDec: subtract one, return the previous value.
type PostDecrementable[S any] interface {
	PostDec() S
}

// ---------- Additive traits ----------

// BinaryAddable hosts expose Add(other).
type BinaryAddable[S any] interface {
	Add(S) S
}

// UnaryAddable hosts expose Pos (unary plus).
type UnaryAddable[S any] interface {
	Pos() S
}

// Addable bundles binary and unary plus.
type Addable[S any] interface {
	BinaryAddable[S]
	UnaryAddable[S]
}

// BinarySubtractable hosts expose Sub(other).
type BinarySubtractable[S any] interface {
	Sub(S) S
}

// UnarySubtractable hosts expose Neg (unary minus).
type UnarySubtractable[S any] interface {
	Neg() S
}

// Subtractable bundles binary and unary minus.
type Subtractable[S any] interface {
	BinarySubtractable[S]
	UnarySubtractable[S]
}

// ---------- Multiplicative traits ----------

// Multiplicable hosts expose Mul(other).
type Multiplicable[S any] interface {
	Mul(S) S
}

// Divisible hosts expose Div(other). Division by zero follows Go semantics.
type Divisible[S any] interface {
	Div(S) S
}

// Modulable hosts expose Mod(other). Integer hosts only.
type Modulable[S any] interface {
	Mod(S) S
}

// ---------- Bitwise traits (integer hosts only) ----------

// BitInvertible hosts expose Not (bitwise complement).
type BitInvertible[S any] interface {
	Not() S
}

// BitAndable hosts expose And(other).
type BitAndable[S any] interface {
	And(S) S
}

// BitOrable hosts expose Or(other).
type BitOrable[S any] interface {
	Or(S) S
}

// BitXorable hosts expose Xor(other).
type BitXorable[S any] interface {
	Xor(S) S
}

// LeftShiftable hosts expose Shl(count).
type LeftShiftable[S any] interface {
	Shl(S) S
}

// RightShiftable hosts expose Shr(count).
type RightShiftable[S any] interface {
	Shr(S) S
}

// ---------- Ordering ----------

// Comparable hosts order themselves against the same kind and against a
// raw value of the wrapped type. Results follow cmp.Compare: -1, 0, +1.
type Comparable[S any, U Scalar] interface {
	Compare(S) int
	CompareValue(U) int
}

// Arithmetic is the full operator surface. Step traits are satisfied by
// the pointer type, so Arithmetic is implemented by *S, not S.
type Arithmetic[S any, U Scalar] interface {
	PreIncrementable[S]
	PostIncrementable[S]
	PreDecrementable[S]
	PostDecrementable[S]
	Addable[S]
	Subtractable[S]
	Multiplicable[S]
	Divisible[S]
	Modulable[S]
	BitInvertible[S]
	BitAndable[S]
	BitOrable[S]
	BitXorable[S]
	LeftShiftable[S]
	RightShiftable[S]
	Comparable[S, U]
}
