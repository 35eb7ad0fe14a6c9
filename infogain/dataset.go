// SPDX-License-Identifier: MIT

package infogain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/infogain/matrix"
)

// Dataset is an immutable table of finite float64 values whose last column
// holds class labels. Every preceding column is a categorical (or
// discretized) attribute.
//
// A Dataset is safe for concurrent use: no method or operation mutates it.
type Dataset struct {
	m *matrix.Dense
}

// NewDataset copies rows into a new Dataset.
//
// Errors:
//   - ErrEmptyDataset   if rows is empty.
//   - ErrTooFewColumns  if the first row has fewer than two values.
//   - ErrRaggedRows     if any row differs in width from the first.
//   - ErrNonFinite      if any value is NaN or ±Inf.
func NewDataset(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, opErrorf(opNewDataset, ErrEmptyDataset)
	}
	if len(rows[0]) < 2 {
		return nil, opErrorf(opNewDataset, fmt.Errorf("%w: got %d", ErrTooFewColumns, len(rows[0])))
	}

	m, err := matrix.NewDenseFromRows(rows, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, opErrorf(opNewDataset, translateMatrixError(err))
	}

	return &Dataset{m: m}, nil
}

// FromMatrix builds a Dataset from any matrix.Matrix. The input is copied,
// so later writes to m do not affect the Dataset.
//
// Errors: ErrNilDataset, ErrEmptyDataset, ErrTooFewColumns, ErrNonFinite.
func FromMatrix(m matrix.Matrix) (*Dataset, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opFromMatrix, fmt.Errorf("%w: %w", ErrNilDataset, err))
	}
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, opErrorf(opFromMatrix, translateMatrixError(err))
	}
	r, c := m.Rows(), m.Cols()
	if c < 2 {
		return nil, opErrorf(opFromMatrix, fmt.Errorf("%w: got %d", ErrTooFewColumns, c))
	}

	// Fast path: clone the buffer, then scan it once.
	if d, ok := m.(*matrix.Dense); ok {
		cp := d.Clone().(*matrix.Dense)
		if err := matrix.ValidateFinite(cp); err != nil {
			return nil, opErrorf(opFromMatrix, translateMatrixError(err))
		}

		return &Dataset{m: cp}, nil
	}

	// Fallback: element-wise copy through the interface; Set enforces finiteness.
	cp, err := matrix.NewDense(r, c, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, opErrorf(opFromMatrix, translateMatrixError(err))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, opErrorf(opFromMatrix, err)
			}
			if err = cp.Set(i, j, v); err != nil {
				return nil, opErrorf(opFromMatrix, translateMatrixError(err))
			}
		}
	}

	return &Dataset{m: cp}, nil
}

// Rows returns the number of rows.
func (ds *Dataset) Rows() int { return ds.m.Rows() }

// Cols returns the number of columns, label column included.
func (ds *Dataset) Cols() int { return ds.m.Cols() }

// NumAttributes returns Cols()-1.
func (ds *Dataset) NumAttributes() int { return ds.m.Cols() - 1 }

// LabelIndex returns the index of the label column (always the last one).
func (ds *Dataset) LabelIndex() int { return ds.m.Cols() - 1 }

// Labels returns a copy of the label column.
func (ds *Dataset) Labels() []float64 {
	labels, _ := ds.m.Col(ds.LabelIndex()) // index is in range by construction

	return labels
}

// Attribute returns a copy of attribute column attr.
func (ds *Dataset) Attribute(attr int) ([]float64, error) {
	if err := ds.checkAttribute(attr); err != nil {
		return nil, opErrorf(opAttribute, err)
	}
	col, _ := ds.m.Col(attr)

	return col, nil
}

// Matrix returns a copy of the underlying table.
func (ds *Dataset) Matrix() matrix.Matrix { return ds.m.Clone() }

// String renders the table rows.
func (ds *Dataset) String() string {
	if ds == nil || ds.m == nil {
		return "<nil>"
	}

	return ds.m.String()
}

// validate rejects nil and zero-value datasets.
func (ds *Dataset) validate() error {
	if ds == nil || ds.m == nil {
		return ErrNilDataset
	}

	return nil
}

// checkAttribute enforces 0 ≤ attr < NumAttributes().
func (ds *Dataset) checkAttribute(attr int) error {
	if err := ds.validate(); err != nil {
		return err
	}
	if n := ds.NumAttributes(); attr < 0 || attr >= n {
		return attributeError(attr, n)
	}

	return nil
}

// translateMatrixError maps matrix sentinels onto infogain sentinels,
// keeping the original in the chain.
func translateMatrixError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrNonFinite, err)
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%w: %w", ErrRaggedRows, err)
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return fmt.Errorf("%w: %w", ErrEmptyDataset, err)
	case errors.Is(err, matrix.ErrNilMatrix):
		return fmt.Errorf("%w: %w", ErrNilDataset, err)
	default:
		return err
	}
}
