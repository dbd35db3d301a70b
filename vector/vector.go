// SPDX-License-Identifier: MIT

// Package vector - storage, factories and safe accessors.
//
// Invariant: len(data) == rows.Int() at every observable point. All
// factories and mutators maintain it; nothing else writes rows.

package vector

import (
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/linalg/dim"
	"github.com/katalvlaran/linalg/num"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen = " | "
	_fmtSep  = " | "
	_fmtEnd  = "\n"
)

// Vector is a dense sequence of T with a strongly typed length.
type Vector[T num.Element] struct {
	rows dim.Row // element count
	data []T     // owned storage, len == rows
}

// New returns an empty vector (length 0).
func New[T num.Element]() *Vector[T] {
	return &Vector[T]{}
}

// NewZeros returns a zero-filled vector of the given length.
// Complexity: O(n).
func NewZeros[T num.Element](rows dim.Row) *Vector[T] {
	return &Vector[T]{rows: rows, data: make([]T, rows.Int())}
}

// FromSlice returns a vector holding a copy of s.
// Complexity: O(n).
func FromSlice[T num.Element](s []T) *Vector[T] {
	data := make([]T, len(s))
	copy(data, s)

	return &Vector[T]{rows: dim.NewRow(uint(len(s))), data: data}
}

// Copy returns a deep copy of v. Thin alias of v.Clone for discoverability.
func Copy[T num.Element](v *Vector[T]) *Vector[T] {
	return v.Clone()
}

// Rows returns the length as a strong Row count.
func (v *Vector[T]) Rows() dim.Row { return v.rows }

// Len returns the element count.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Data returns the backing slice without copying.
//
// WARNING: writes through the slice modify v, and indexing it is unchecked.
// Do not append to it; the vector keeps its own length.
func (v *Vector[T]) Data() []T { return v.data }

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T { return slices.Clone(v.data) }

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{rows: v.rows, data: slices.Clone(v.data)}
}

// Move hands v's storage to a new Vector and leaves v erased.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{rows: v.rows, data: v.data}
	v.Erase()

	return out
}

// Erase resets v to length 0 and drops its storage.
func (v *Vector[T]) Erase() {
	v.rows = dim.Row{}
	v.data = nil
}

// assign takes over src's storage; used by the compound operators.
func (v *Vector[T]) assign(src *Vector[T]) {
	v.rows, v.data = src.rows, src.data
}

// Equal reports whether v and o have the same length and equal elements.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if !v.rows.Equal(o.rows) {
		return false
	}

	return slices.Equal(v.data, o.data)
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool { return !v.Equal(o) }

// String renders the vector as a single pipe-delimited row. Debug only.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for _, x := range v.data {
		sb.WriteString(num.Format(x))
		sb.WriteString(_fmtSep)
	}
	sb.WriteString(_fmtEnd)

	return sb.String()
}

// ---------- Iteration ----------

// All yields (index, value) pairs in order. Restartable; does not consume v.
func (v *Vector[T]) All() iter.Seq2[int, T] { return slices.All(v.data) }

// Elements yields the values in order.
func (v *Vector[T]) Elements() iter.Seq[T] { return slices.Values(v.data) }

// Refs yields (index, pointer) pairs for in-place mutation.
func (v *Vector[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range v.data {
			if !yield(i, &v.data[i]) {
				return
			}
		}
	}
}
