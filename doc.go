// Package linalg is a small generic dense linear-algebra toolkit whose
// extents are strongly typed: a row count can never be passed where a
// column count is expected.
//
// 🚀 What is linalg?
//
//	A pure-Go library built in layers, leaves first:
//		• strong  – capability traits (Inc, Add, Compare, bit ops…) and generic
//		            kernels for any type wrapping a scalar
//		• dim     – Row and Column, distinct unsigned dimension types
//		• num     – element constraint and per-type numeric helpers
//		• vector  – Vector[T]: arithmetic, norm, direction predicates, products
//		• matrix  – Matrix[T]: arithmetic, transpose, dual-mode product, plus
//		            strict error-returning kernels
//		• interop – zero-copy and copying bridges to gonum/mat
//
// ✨ Why two surfaces?
//
//   - The methods on Vector and Matrix never fail: a shape mismatch degrades
//     to a documented fallback (copy, zeros or empty). Convenient, and a
//     footgun if you expect errors.
//   - The package-level kernels in matrix (Sum, Product, MatVec, …) validate
//     their operands and return sentinel errors instead.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})
//	fmt.Print(a.Mul(b))
//	//  | 19 | 22 |
//	//  | 43 | 50 |
//
// See examples/power_iteration for a runnable program.
//
//	go get github.com/katalvlaran/linalg
package linalg
