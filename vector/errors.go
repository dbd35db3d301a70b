// SPDX-License-Identifier: MIT

// Package vector: sentinel errors.
// Shape mismatch is not an error in this package (see doc.go); the only
// failure a caller can observe is an out-of-range index.

package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates an index outside [0, Len()).
var ErrOutOfRange = errors.New("vector: index out of range")

// method tags used in error wrappers
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// vectorErrorf wraps err with the method name and index, preserving it for errors.Is.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}
