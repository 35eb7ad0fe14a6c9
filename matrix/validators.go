// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep callers minimal by delegating nil/shape/index/finite checks here.
//  - Every validator tags the sentinel with its own name and wraps it with %w.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - ValidateFinite is O(r*c) and uses the flat buffer for *Dense.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Index).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures m is non-nil and has at least one row and one column.
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidDimensions)
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ i < m.Rows(). Assumes m is not nil.
func ValidateRowIndex(m Matrix, i int) error {
	if i < 0 || i >= m.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex ensures 0 ≤ j < m.Cols(). Assumes m is not nil.
func ValidateColIndex(m Matrix, j int) error {
	if j < 0 || j >= m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateColIndex(%d)", j), ErrOutOfRange)
	}

	return nil
}

// ValidateFinite scans every element and rejects NaN/±Inf regardless of the
// matrix's own numeric policy. Assumes m is not nil.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for off, v := range d.data {
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, off/d.c, off%d.c, ErrNaNInf))
			}
		}

		return nil
	}

	// Fallback: At(i,j) with full error propagation.
	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}
