// SPDX-License-Identifier: MIT

// Package matrix - lenient elementwise arithmetic and the dual-mode product.
//
// Shape policy (degrade-not-fail, see doc.go):
//   - Add/Sub: precondition rows equal OR cols equal; the result has the
//     receiver's extents and cells absent from o read as zero. Otherwise the
//     result is an unchanged copy of the receiver.
//   - Mul: product, else elementwise square of equal operands, else 0×0.
//
// Compound forms (XxxAssign) compute the plain result and move it into the
// receiver; they return the receiver for chaining.

package matrix

// Add returns m + o under the lenient shape policy.
// Complexity: O(r*c).
func (m *Matrix[T]) Add(o *Matrix[T]) *Matrix[T] {
	return m.zipLenient(o, func(a, b T) T { return a + b })
}

// Sub returns m - o under the lenient shape policy.
// Complexity: O(r*c).
func (m *Matrix[T]) Sub(o *Matrix[T]) *Matrix[T] {
	return m.zipLenient(o, func(a, b T) T { return a - b })
}

// zipLenient is the shared kernel of Add/Sub.
func (m *Matrix[T]) zipLenient(o *Matrix[T], f func(a, b T) T) *Matrix[T] {
	if !m.rows.Equal(o.rows) && !m.cols.Equal(o.cols) {
		return m.Clone()
	}
	r, c := m.rows.Int(), m.cols.Int()
	orows, ocols := o.rows.Int(), o.cols.Int()
	out := NewZeros[T](m.rows, m.cols)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var b T
			if i < orows && j < ocols {
				b = o.data[i*ocols+j]
			}
			out.data[i*c+j] = f(m.data[i*c+j], b)
		}
	}

	return out
}

// AddScalar returns m + k elementwise.
func (m *Matrix[T]) AddScalar(k T) *Matrix[T] {
	return m.mapScalar(func(x T) T { return x + k })
}

// SubScalar returns m - k elementwise.
func (m *Matrix[T]) SubScalar(k T) *Matrix[T] {
	return m.mapScalar(func(x T) T { return x - k })
}

// MulScalar returns m * k elementwise.
func (m *Matrix[T]) MulScalar(k T) *Matrix[T] {
	return m.mapScalar(func(x T) T { return x * k })
}

func (m *Matrix[T]) mapScalar(f func(T) T) *Matrix[T] {
	out := NewZeros[T](m.rows, m.cols)
	for idx, x := range m.data {
		out.data[idx] = f(x)
	}

	return out
}

// Mul is the dual-mode product:
//
//  1. m.Cols() == o.Rows(): the standard product, r × o.c.
//  2. otherwise, m.Equal(o): the elementwise square m[i][j]², same extents
//     (0×0 when m has no rows).
//  3. otherwise: an empty 0×0 matrix.
//
// Use Product for an error on incompatible extents, Square for the
// elementwise square regardless of shape.
// Complexity: O(r*k*c) for case 1, O(r*c) for case 2.
func (m *Matrix[T]) Mul(o *Matrix[T]) *Matrix[T] {
	switch {
	case m.cols.Get() == o.rows.Get():
		return m.product(o)
	case m.Equal(o):
		if m.rows.Int() == 0 {
			return New[T]()
		}
		return m.Square()
	default:
		return New[T]()
	}
}

// product computes m·o assuming m.cols == o.rows. A result with no rows
// also has no columns.
func (m *Matrix[T]) product(o *Matrix[T]) *Matrix[T] {
	r, inner, c := m.rows.Int(), m.cols.Int(), o.cols.Int()
	if r == 0 {
		return New[T]()
	}
	out := NewZeros[T](m.rows, o.cols)
	// i→k→j keeps the row of o hot; each cell still sums over k ascending.
	for i := 0; i < r; i++ {
		dst := out.data[i*c : (i+1)*c]
		for k := 0; k < inner; k++ {
			a := m.data[i*inner+k]
			src := o.data[k*c : (k+1)*c]
			for j, b := range src {
				dst[j] += a * b
			}
		}
	}

	return out
}

// Square returns the elementwise square m[i][j]², defined for any shape.
func (m *Matrix[T]) Square() *Matrix[T] {
	return m.mapScalar(func(x T) T { return x * x })
}

// AddAssign sets m = m.Add(o).
func (m *Matrix[T]) AddAssign(o *Matrix[T]) *Matrix[T] {
	m.assign(m.Add(o))
	return m
}

// SubAssign sets m = m.Sub(o).
func (m *Matrix[T]) SubAssign(o *Matrix[T]) *Matrix[T] {
	m.assign(m.Sub(o))
	return m
}

// MulAssign sets m = m.Mul(o). The extents of m may change.
func (m *Matrix[T]) MulAssign(o *Matrix[T]) *Matrix[T] {
	m.assign(m.Mul(o))
	return m
}

// AddScalarAssign sets m = m.AddScalar(k).
func (m *Matrix[T]) AddScalarAssign(k T) *Matrix[T] {
	m.assign(m.AddScalar(k))
	return m
}

// SubScalarAssign sets m = m.SubScalar(k).
func (m *Matrix[T]) SubScalarAssign(k T) *Matrix[T] {
	m.assign(m.SubScalar(k))
	return m
}

// MulScalarAssign sets m = m.MulScalar(k).
func (m *Matrix[T]) MulScalarAssign(k T) *Matrix[T] {
	m.assign(m.MulScalar(k))
	return m
}
