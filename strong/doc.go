// SPDX-License-Identifier: MIT

// Package strong provides capability traits for strongly typed scalars.
//
// What & Why:
//
//	A strong scalar wraps a plain number so that values with different
//	meaning (a row count, a column count, an offset) cannot be mixed at a
//	call site, while still supporting the arithmetic they need. Go has no
//	operator overloading and no mixins, so every operator family is split
//	into two parts:
//
//	  - a trait interface (PreIncrementable, BinaryAddable, Comparable, ...)
//	    naming the method a host exposes, and
//	  - a generic kernel (Inc, Add, Compare, ...) that implements that
//	    method purely through the host's Host contract.
//
//	A host type opts into a trait by declaring the one-line method that
//	forwards to the kernel. It composes exactly the operators it needs and
//	never duplicates arithmetic code.
//
// Host contract:
//
//	type Host[S any, U Scalar] interface {
//	    Get() U     // read the wrapped value
//	    Wrap(U) S   // rebuild a host of the same kind around a new value
//	}
//
// Conflicts:
//
//	Each trait owns a distinct method name, so any combination of traits
//	composes without ambiguity. Bundles (Addable, Subtractable, Arithmetic)
//	are plain interface embeddings of the single traits.
//
// Overflow and underflow follow the wrapped Go type (unsigned values wrap
// modulo 2^n). Kernels never guard against them.
//
// Complexity: every kernel is O(1) and allocation free.
package strong
