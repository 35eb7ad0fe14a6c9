// SPDX-License-Identifier: MIT
// Package infogain: sentinel error set.
// Every public operation returns one of these sentinels wrapped with the
// operation name ("Entropy: infogain: empty dataset"); callers match with
// errors.Is. Errors that originate in the matrix package are translated to
// the sentinel below and keep the matrix sentinel in the chain as well.

package infogain

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDataset is returned when a nil or zero-value *Dataset is used.
	ErrNilDataset = errors.New("infogain: dataset is nil")

	// ErrEmptyDataset is returned for a dataset with zero rows.
	// Probabilities are count/rows, so an empty dataset has no defined entropy.
	ErrEmptyDataset = errors.New("infogain: empty dataset")

	// ErrTooFewColumns is returned when a dataset has fewer than two columns
	// (at least one attribute plus the label column are required).
	ErrTooFewColumns = errors.New("infogain: dataset needs at least one attribute and a label column")

	// ErrRaggedRows is returned when input rows have different widths.
	ErrRaggedRows = errors.New("infogain: rows have different lengths")

	// ErrNonFinite is returned when the dataset holds NaN or ±Inf.
	// Values are grouped by equality and NaN never equals itself.
	ErrNonFinite = errors.New("infogain: dataset contains NaN or Inf")

	// ErrInvalidAttribute is returned when an attribute index is outside
	// [0, columns-2]. The label column is not an attribute.
	ErrInvalidAttribute = errors.New("infogain: invalid attribute index")

	// ErrOptionViolation is returned when an invalid Option value is supplied.
	ErrOptionViolation = errors.New("infogain: invalid option supplied")
)

// Operation tags used in error wrapping.
const (
	opNewDataset    = "NewDataset"
	opFromMatrix    = "FromMatrix"
	opAttribute     = "Attribute"
	opClassCounts   = "ClassCounts"
	opPartitionBy   = "PartitionBy"
	opEntropy       = "Entropy"
	opAverageInfo   = "AverageAttributeInformation"
	opInfoGain      = "InformationGain"
	opSelectBest    = "SelectBestAttribute"
	opRound         = "round"
	opParallelGains = "parallel gains"
)

// opErrorf wraps err with the operation tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// attributeError reports attr against the valid range of n attributes.
func attributeError(attr, n int) error {
	return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidAttribute, attr, n-1)
}
