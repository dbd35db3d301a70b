// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Callers match with errors.Is;
// wrappers below only add operation context.
//
// The lenient methods never return these: shape mismatches there degrade to
// a fallback value (see doc.go).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside the extents.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when input rows do not form a rectangle.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand extents in a strict
	// kernel, e.g. Sum of different shapes or Product where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed to a strict kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates that a nil *vector.Vector was passed to MatVec.
	ErrNilVector = errors.New("matrix: nil vector")
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag
)

// cellErrorf wraps err with the method name and coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
