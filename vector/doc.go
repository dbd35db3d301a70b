// SPDX-License-Identifier: MIT

// Package vector provides Vector[T], a dense one-dimensional engine over any
// integer or floating-point element type.
//
// 🚀 What is it?
//
//	A Vector owns a contiguous []T plus its length as a dim.Row. It offers
//	elementwise arithmetic, a Euclidean norm, in-place normalization,
//	direction predicates (Opposite, Parallel, AntiParallel) and the dot and
//	3D cross products.
//
// ✨ Key properties:
//   - value semantics: plain operators return a fresh Vector, XxxAssign
//     forms rewrite the receiver. Clone copies deeply; Move hands storage
//     over and leaves the source erased.
//   - checked access through At/Set (ErrOutOfRange); Data is the unchecked
//     escape hatch that aliases storage.
//   - restartable iterators: All, Elements (read-only) and Refs (mutable).
//
// ⚠️ Shape mismatch degrades, it never fails:
//
//	Add on different lengths returns a zero vector of the receiver's length,
//	Sub returns a copy of the receiver, Dot returns 0 and Cross returns an
//	empty vector. Callers that need hard failures must compare Len first.
//
// Numeric edge cases:
//   - Normalize does not guard a zero magnitude: float vectors become NaN,
//     integer vectors are left untouched.
//   - Parallel/AntiParallel compare per-index ratios against index 0 within
//     the element epsilon (see WithTolerance); zero integer denominators and
//     NaN ratios report false.
//
// Concurrency: none. Share a Vector across goroutines only behind your own
// lock, or hand each goroutine its own Clone.
package vector
