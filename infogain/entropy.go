// SPDX-License-Identifier: MIT

package infogain

// Entropy returns the label entropy of ds in bits:
//
//	H(S) = −Σ p_i · log2(p_i + eps),  p_i = count_i / rows
//
// It is ≥ 0, and exactly 0 when every row shares one label.
//
// Errors: ErrOptionViolation, ErrNilDataset.
//
// Complexity: O(rows + k log k) for k distinct labels.
func Entropy(ds *Dataset, opts ...Option) (float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, opErrorf(opEntropy, err)
	}
	if err = ds.validate(); err != nil {
		return 0, opErrorf(opEntropy, err)
	}

	h, err := labelEntropy(ds.Labels(), o.Epsilon)
	if err != nil {
		return 0, opErrorf(opEntropy, err)
	}

	return h, nil
}

// labelEntropy is the kernel shared by Entropy and SelectBestAttribute.
// Datasets cannot be empty, but the kernel still refuses to divide by zero.
func labelEntropy(labels []float64, eps float64) (float64, error) {
	if len(labels) == 0 {
		return 0, ErrEmptyDataset
	}

	return countClasses(labels).Entropy(eps), nil
}
