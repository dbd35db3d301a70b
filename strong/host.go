// SPDX-License-Identifier: MIT

package strong

import "golang.org/x/exp/constraints"

// Scalar is the set of underlying types a strong wrapper may carry.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Host is the access surface a strong type offers to its traits.
// Get reads the wrapped value; Wrap builds a value of the same kind.
// Wrap must not depend on the receiver's current value.
type Host[S any, U Scalar] interface {
	Get() U
	Wrap(U) S
}
