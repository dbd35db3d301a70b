// SPDX-License-Identifier: MIT

package dim

import (
	"strconv"

	"github.com/katalvlaran/linalg/strong"
)

type (
	rowKind    struct{}
	columnKind struct{}
)

// kind is the closed set of dimension kinds.
type kind interface {
	rowKind | columnKind
}

// Dimension is a non-negative count of kind K. The zero value is 0.
type Dimension[K kind] struct {
	n uint
}

// Row counts matrix rows (or vector elements).
type Row = Dimension[rowKind]

// Column counts matrix columns.
type Column = Dimension[columnKind]

// Compile-time trait conformance.
var (
	_ strong.Host[Row, uint]          = Row{}
	_ strong.BinaryAddable[Row]       = Row{}
	_ strong.BinarySubtractable[Row]  = Row{}
	_ strong.Comparable[Row, uint]    = Row{}
	_ strong.PreIncrementable[Row]    = (*Row)(nil)
	_ strong.PostIncrementable[Row]   = (*Row)(nil)
	_ strong.PreDecrementable[Row]    = (*Row)(nil)
	_ strong.PostDecrementable[Row]   = (*Row)(nil)
	_ strong.Comparable[Column, uint] = Column{}
)

// NewRow returns a Row holding n.
func NewRow(n uint) Row { return Row{n: n} }

// NewColumn returns a Column holding n.
func NewColumn(n uint) Column { return Column{n: n} }

// Get returns the wrapped count.
func (d Dimension[K]) Get() uint { return d.n }

// Int returns the count as an int, the type Go uses for lengths.
func (d Dimension[K]) Int() int { return int(d.n) }

// Wrap returns a Dimension of the same kind holding n.
func (d Dimension[K]) Wrap(n uint) Dimension[K] { return Dimension[K]{n: n} }

// String renders the count in decimal.
func (d Dimension[K]) String() string { return strconv.FormatUint(uint64(d.n), 10) }

// ---------- step ----------

// Inc adds one and returns the new value.
func (d *Dimension[K]) Inc() Dimension[K] { return strong.Inc[Dimension[K], uint](d) }

// PostInc adds one and returns the previous value.
func (d *Dimension[K]) PostInc() Dimension[K] { return strong.PostInc[Dimension[K], uint](d) }

// Dec subtracts one and returns the new value.
func (d *Dimension[K]) Dec() Dimension[K] { return strong.Dec[Dimension[K], uint](d) }

// PostDec subtracts one and returns the previous value.
func (d *Dimension[K]) PostDec() Dimension[K] { return strong.PostDec[Dimension[K], uint](d) }

// ---------- arithmetic ----------

// Add returns d+o.
func (d Dimension[K]) Add(o Dimension[K]) Dimension[K] { return strong.Add[Dimension[K], uint](d, o) }

// Sub returns d-o.
func (d Dimension[K]) Sub(o Dimension[K]) Dimension[K] { return strong.Sub[Dimension[K], uint](d, o) }

// ---------- ordering against the same kind ----------

// Compare returns -1, 0 or +1.
func (d Dimension[K]) Compare(o Dimension[K]) int { return strong.Compare[Dimension[K], uint](d, o) }

// Equal reports d == o.
func (d Dimension[K]) Equal(o Dimension[K]) bool { return strong.Equal[Dimension[K], uint](d, o) }

// Less reports d < o.
func (d Dimension[K]) Less(o Dimension[K]) bool { return strong.Less[Dimension[K], uint](d, o) }

// LessOrEqual reports d <= o.
func (d Dimension[K]) LessOrEqual(o Dimension[K]) bool {
	return strong.LessOrEqual[Dimension[K], uint](d, o)
}

// Greater reports d > o.
func (d Dimension[K]) Greater(o Dimension[K]) bool { return strong.Greater[Dimension[K], uint](d, o) }

// GreaterOrEqual reports d >= o.
func (d Dimension[K]) GreaterOrEqual(o Dimension[K]) bool {
	return strong.GreaterOrEqual[Dimension[K], uint](d, o)
}

// ---------- ordering against a raw count ----------

// CompareValue orders d against a raw count.
func (d Dimension[K]) CompareValue(n uint) int {
	return strong.CompareValue[Dimension[K], uint](d, n)
}

// EqualValue reports d == n.
func (d Dimension[K]) EqualValue(n uint) bool { return d.CompareValue(n) == 0 }

// LessValue reports d < n.
func (d Dimension[K]) LessValue(n uint) bool { return d.CompareValue(n) < 0 }

// LessOrEqualValue reports d <= n.
func (d Dimension[K]) LessOrEqualValue(n uint) bool { return d.CompareValue(n) <= 0 }

// GreaterValue reports d > n.
func (d Dimension[K]) GreaterValue(n uint) bool { return d.CompareValue(n) > 0 }

// GreaterOrEqualValue reports d >= n.
func (d Dimension[K]) GreaterOrEqualValue(n uint) bool { return d.CompareValue(n) >= 0 }
