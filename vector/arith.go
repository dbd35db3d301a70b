// SPDX-License-Identifier: MIT

// Package vector - elementwise arithmetic.
//
// Shape policy (see doc.go):
//   - Add on a length mismatch returns a zero vector of the receiver's length.
//   - Sub on a length mismatch returns a copy of the receiver.
//
// Compound forms (XxxAssign) compute the plain result and move it into the
// receiver; they return the receiver for chaining.

package vector

// Add returns v + o elementwise.
func (v *Vector[T]) Add(o *Vector[T]) *Vector[T] {
	out := NewZeros[T](v.rows)
	if len(o.data) != len(v.data) {
		return out
	}
	for i, x := range v.data {
		out.data[i] = x + o.data[i]
	}

	return out
}

// Sub returns v - o elementwise.
func (v *Vector[T]) Sub(o *Vector[T]) *Vector[T] {
	if len(o.data) != len(v.data) {
		return v.Clone()
	}
	out := NewZeros[T](v.rows)
	for i, x := range v.data {
		out.data[i] = x - o.data[i]
	}

	return out
}

// AddScalar returns v + k elementwise.
func (v *Vector[T]) AddScalar(k T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x + k })
}

// SubScalar returns v - k elementwise.
func (v *Vector[T]) SubScalar(k T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x - k })
}

// MulScalar returns v * k elementwise.
func (v *Vector[T]) MulScalar(k T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x * k })
}

func (v *Vector[T]) mapScalar(f func(T) T) *Vector[T] {
	out := NewZeros[T](v.rows)
	for i, x := range v.data {
		out.data[i] = f(x)
	}

	return out
}

// AddAssign sets v = v.Add(o).
func (v *Vector[T]) AddAssign(o *Vector[T]) *Vector[T] {
	v.assign(v.Add(o))
	return v
}

// SubAssign sets v = v.Sub(o).
func (v *Vector[T]) SubAssign(o *Vector[T]) *Vector[T] {
	v.assign(v.Sub(o))
	return v
}

// AddScalarAssign sets v = v.AddScalar(k).
func (v *Vector[T]) AddScalarAssign(k T) *Vector[T] {
	v.assign(v.AddScalar(k))
	return v
}

// SubScalarAssign sets v = v.SubScalar(k).
func (v *Vector[T]) SubScalarAssign(k T) *Vector[T] {
	v.assign(v.SubScalar(k))
	return v
}

// MulScalarAssign sets v = v.MulScalar(k).
func (v *Vector[T]) MulScalarAssign(k T) *Vector[T] {
	v.assign(v.MulScalar(k))
	return v
}
