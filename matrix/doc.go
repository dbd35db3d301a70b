// SPDX-License-Identifier: MIT

// Package matrix implements a dense, generic, row-major matrix with strongly
// typed extents (dim.Row × dim.Column).
//
// 🚀 What is this?
//
//	Matrix[T] owns r·c elements of any integer or float type T. It offers two
//	surfaces side by side:
//
//	  • Lenient methods (Add, Sub, Mul, …) that never fail. A shape mismatch
//	    degrades to a documented fallback value instead of an error.
//	  • Strict kernels (Sum, Diff, Product, Hadamard, Scale, Transposed,
//	    AllClose, MatVec) that validate operands and return sentinel errors.
//
// ⚠️ Degrade-not-fail (lenient surface)
//
//	Add / Sub  – require rows equal OR cols equal; iterate the receiver's
//	             extents, reading cells missing in the other operand as zero.
//	             Otherwise return an unchanged copy of the receiver.
//	Mul        – (a) cols == o.rows: standard product r × o.c;
//	             (b) else, if the operands are equal: elementwise square;
//	             (c) else: an empty 0×0 matrix.
//
//	Callers that expect an error on mismatched shapes must use the strict
//	kernels.
//
// ✨ Storage
//
//   - One flat buffer, offset = i*cols + j. Rows are never ragged.
//   - Data() hands out row views into that buffer; writes through them are
//     visible in the matrix. Values() returns a deep copy.
//   - Transpose, Erase and Move reshape in place and are the only mutators
//     of the extents.
//
// ⚙️ Errors
//
//	ErrOutOfRange        – At/Set outside the extents.
//	ErrBadShape          – FromRows on ragged input.
//	ErrNilMatrix         – nil operand to a strict kernel.
//	ErrNilVector         – nil vector operand to MatVec.
//	ErrDimensionMismatch – incompatible operands in a strict kernel.
//
// Concurrency: none. A Matrix is a plain value; share it across goroutines
// only with external synchronization or a Clone.
package matrix
