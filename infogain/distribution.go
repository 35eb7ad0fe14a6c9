// SPDX-License-Identifier: MIT

package infogain

import (
	"math"
	"sort"
)

// ClassDistribution maps each distinct label value of a row subset to its
// occurrence count. It is built fresh per call and never cached.
type ClassDistribution struct {
	counts map[float64]int
	total  int
}

// countClasses tallies labels in a single pass.
func countClasses(labels []float64) ClassDistribution {
	d := ClassDistribution{counts: make(map[float64]int), total: len(labels)}
	for _, v := range labels {
		d.counts[v]++
	}

	return d
}

// ClassCounts returns the label distribution of the whole dataset.
func ClassCounts(ds *Dataset) (ClassDistribution, error) {
	if err := ds.validate(); err != nil {
		return ClassDistribution{}, opErrorf(opClassCounts, err)
	}

	return countClasses(ds.Labels()), nil
}

// Total returns the number of rows the distribution was built from.
func (d ClassDistribution) Total() int { return d.total }

// Len returns the number of distinct labels.
func (d ClassDistribution) Len() int { return len(d.counts) }

// Count returns how many rows carry label v.
func (d ClassDistribution) Count(v float64) int { return d.counts[v] }

// Values returns the distinct labels in ascending order.
func (d ClassDistribution) Values() []float64 {
	out := make([]float64, 0, len(d.counts))
	for v := range d.counts {
		out = append(out, v)
	}
	sort.Float64s(out)

	return out
}

// Entropy returns −Σ p·log2(p + eps) over the distinct labels, in bits.
//
// Empty and pure (single-label) distributions return exactly 0.
// Labels are summed in ascending order.
func (d ClassDistribution) Entropy(eps float64) float64 {
	if d.total == 0 || len(d.counts) <= 1 {
		return 0
	}

	n := float64(d.total)
	var h float64
	for _, v := range d.Values() {
		p := float64(d.counts[v]) / n
		h -= p * math.Log2(p+eps)
	}

	return h
}
