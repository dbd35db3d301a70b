// SPDX-License-Identifier: MIT

// Package matrix - row-major storage, factories and safe accessors.
//
// Purpose:
//   - Keep one flat buffer with the explicit index formula i*cols + j, so
//     rectangularity is structural and cannot be broken through the API.
//   - At/Set return ErrOutOfRange instead of panicking.
//   - Fixed loop orders everywhere (i then j); no map iteration.
//
// Complexity quicksheet:
//   - NewZeros/FromRows/Clone/Values: O(r*c); At/Set: O(1); Data: O(r).

package matrix

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/linalg/dim"
	"github.com/katalvlaran/linalg/num"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = " | "
	_fmtSep      = " | "
	_fmtRowClose = "\n"
)

// Matrix is a dense row-major matrix of T with strongly typed extents.
type Matrix[T num.Element] struct {
	rows dim.Row    // row count
	cols dim.Column // column count
	data []T        // contiguous row-major storage (len == rows*cols)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New returns an empty 0×0 matrix.
func New[T num.Element]() *Matrix[T] {
	return &Matrix[T]{}
}

// NewZeros returns an r×c matrix with every element zero.
// Complexity: O(r*c).
func NewZeros[T num.Element](r dim.Row, c dim.Column) *Matrix[T] {
	return &Matrix[T]{rows: r, cols: c, data: make([]T, r.Int()*c.Int())}
}

// Identity returns the n×n identity matrix.
func Identity[T num.Element](n uint) *Matrix[T] {
	out := NewZeros[T](dim.NewRow(n), dim.NewColumn(n))
	for i := 0; i < int(n); i++ {
		out.data[i*int(n)+i] = 1
	}

	return out
}

// FromColumn interprets seq as a single column: len(seq)×1. The input is
// copied. An empty seq yields 0×1.
func FromColumn[T num.Element](seq []T) *Matrix[T] {
	return &Matrix[T]{
		rows: dim.NewRow(uint(len(seq))),
		cols: dim.NewColumn(1),
		data: slices.Clone(seq),
	}
}

// FromRows builds a matrix from a sequence of rows, inferring the extents:
// r = len(rows), c = len(rows[0]). Empty input yields 0×0. The input is
// copied.
//
// Errors:
//   - ErrBadShape if any row length differs from the first.
func FromRows[T num.Element](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return New[T](), nil
	}
	c := len(rows[0])
	data := make([]T, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape))
		}
		data = append(data, row...)
	}

	return &Matrix[T]{
		rows: dim.NewRow(uint(len(rows))),
		cols: dim.NewColumn(uint(c)),
		data: data,
	}, nil
}

// Copy returns a deep copy of m. Same as m.Clone.
func Copy[T num.Element](m *Matrix[T]) *Matrix[T] {
	return m.Clone()
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() dim.Row { return m.rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() dim.Column { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (dim.Row, dim.Column) { return m.rows, m.cols }

// indexOf maps (i,j) to the flat offset; ok is false outside the extents.
func (m *Matrix[T]) indexOf(i, j int) (int, bool) {
	if i < 0 || i >= m.rows.Int() || j < 0 || j >= m.cols.Int() {
		return 0, false
	}

	return i*m.cols.Int() + j, true
}

// At returns the element at (i,j).
func (m *Matrix[T]) At(i, j int) (T, error) {
	off, ok := m.indexOf(i, j)
	if !ok {
		var zero T
		return zero, cellErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[off], nil
}

// Set writes x at (i,j).
func (m *Matrix[T]) Set(i, j int, x T) error {
	off, ok := m.indexOf(i, j)
	if !ok {
		return cellErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[off] = x

	return nil
}

// row returns row i as a capacity-capped view into storage.
func (m *Matrix[T]) row(i int) []T {
	c := m.cols.Int()
	lo := i * c

	return m.data[lo : lo+c : lo+c]
}

// Data returns the rows as views into the matrix storage. Writes to an
// element are visible in m; appending to a view never clobbers the next row.
// Complexity: O(r).
func (m *Matrix[T]) Data() [][]T {
	out := make([][]T, m.rows.Int())
	for i := range out {
		out[i] = m.row(i)
	}

	return out
}

// Raw returns the flat row-major storage, offset i*Cols()+j. The slice
// aliases m; it is invalidated by Transpose, Erase, Move and XxxAssign.
func (m *Matrix[T]) Raw() []T { return m.data }

// Values returns a deep copy of the rows.
// Complexity: O(r*c).
func (m *Matrix[T]) Values() [][]T {
	out := make([][]T, m.rows.Int())
	for i := range out {
		out[i] = slices.Clone(m.row(i))
	}

	return out
}

// All yields (i, row view) pairs in row order.
func (m *Matrix[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < m.rows.Int(); i++ {
			if !yield(i, m.row(i)) {
				return
			}
		}
	}
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// Move transfers m's storage into a new matrix and leaves m erased.
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: m.data}
	m.Erase()

	return out
}

// Erase resets m to 0×0 with empty storage.
func (m *Matrix[T]) Erase() {
	m.rows, m.cols, m.data = dim.Row{}, dim.Column{}, nil
}

// assign takes over src's extents and storage.
func (m *Matrix[T]) assign(src *Matrix[T]) {
	m.rows, m.cols, m.data = src.rows, src.cols, src.data
}

// Transpose replaces m with its transpose in place: new[i][j] = old[j][i],
// and the Row and Column counts swap. Always returns true.
// Complexity: O(r*c) time and a fresh r*c buffer.
func (m *Matrix[T]) Transpose() bool {
	m.assign(m.transposed())

	return true
}

// transposed returns a new c×r matrix holding mᵀ.
func (m *Matrix[T]) transposed() *Matrix[T] {
	r, c := m.rows.Int(), m.cols.Int()
	out := NewZeros[T](dim.NewRow(m.cols.Get()), dim.NewColumn(m.rows.Get()))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = m.data[i*c+j]
		}
	}

	return out
}

// Equal reports whether m and o have the same Row and Column counts and
// equal elements. The extents are compared first.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if !m.rows.Equal(o.rows) || !m.cols.Equal(o.cols) {
		return false
	}

	return slices.Equal(m.data, o.data)
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool { return !m.Equal(o) }

// String renders one line per row, " | e1 | e2 | ... | ". Floats use %f.
// Debug only; there is no parser.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for _, row := range m.All() {
		sb.WriteString(_fmtRowOpen)
		for _, x := range row {
			sb.WriteString(num.Format(x))
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
