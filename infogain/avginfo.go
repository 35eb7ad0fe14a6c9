// SPDX-License-Identifier: MIT

package infogain

// AverageAttributeInformation returns the conditional label entropy of ds
// after partitioning on attribute attr:
//
//	I(A) = Σ_v (|S_v| / |S|) · H(S_v)
//
// where S_v are the rows whose attribute value is v.
//
// Errors: ErrOptionViolation, ErrNilDataset, ErrInvalidAttribute.
//
// Complexity: O(rows + d log d) for d distinct attribute values.
func AverageAttributeInformation(ds *Dataset, attr int, opts ...Option) (float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, opErrorf(opAverageInfo, err)
	}
	if err = ds.checkAttribute(attr); err != nil {
		return 0, opErrorf(opAverageInfo, err)
	}

	return averageInformation(ds, attr, o.Epsilon), nil
}

// averageInformation assumes attr has been validated.
func averageInformation(ds *Dataset, attr int, eps float64) float64 {
	labels := ds.Labels()
	col, _ := ds.m.Col(attr)
	total := float64(len(labels))

	var avg float64
	for _, part := range partitionColumn(col) {
		size := len(part.Rows)
		if size == 0 {
			continue // only observed values are partitioned; kept as a guard
		}
		sub := make([]float64, size)
		for k, row := range part.Rows {
			sub[k] = labels[row]
		}

		var h float64
		if dist := countClasses(sub); dist.Len() > 0 {
			h = dist.Entropy(eps)
		}
		avg += float64(size) / total * h
	}

	return avg
}
