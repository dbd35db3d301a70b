// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the operand checks of the strict
//    kernels (nil, same shape, product compatibility, vector length).
//  - Return sentinels tagged with the validator name; kernels add their
//    own operation tag on top.
//
// Determinism & Performance:
//  - All checks are O(1), pure and allocation-free on success.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/num"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil[T num.Element](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal extents.
// Assumes both are non-nil.
func ValidateSameShape[T num.Element](a, b *Matrix[T]) error {
	if !a.rows.Equal(b.rows) {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if !a.cols.Equal(b.cols) {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is NotNil(a) → NotNil(b) → SameShape(a, b).
func ValidateBinarySameShape[T num.Element](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible is NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible[T num.Element](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.cols.Get() != b.rows.Get() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%d columns vs %d rows: %w", a.cols.Get(), b.rows.Get(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures a vector length n matches the column count of m.
// Assumes m is non-nil.
func ValidateVecLen[T num.Element](m *Matrix[T], n int) error {
	if n != m.cols.Int() {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
