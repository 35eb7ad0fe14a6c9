// SPDX-License-Identifier: MIT

package infogain

import "sort"

// Partition is the set of rows sharing one value of an attribute.
type Partition struct {
	Value float64 // attribute value shared by every row in Rows
	Rows  []int   // row indices in ascending order
}

// PartitionBy groups the rows of ds by the distinct values of attribute attr.
// Partitions are ordered by ascending Value.
//
// Errors: ErrNilDataset, ErrInvalidAttribute.
func PartitionBy(ds *Dataset, attr int) ([]Partition, error) {
	if err := ds.checkAttribute(attr); err != nil {
		return nil, opErrorf(opPartitionBy, err)
	}
	col, _ := ds.m.Col(attr)

	return partitionColumn(col), nil
}

// partitionColumn builds value → row indices in one pass over col.
func partitionColumn(col []float64) []Partition {
	index := make(map[float64]int)
	parts := make([]Partition, 0)
	for row, v := range col {
		k, ok := index[v]
		if !ok {
			k = len(parts)
			index[v] = k
			parts = append(parts, Partition{Value: v})
		}
		parts[k].Rows = append(parts[k].Rows, row)
	}
	sort.Slice(parts, func(a, b int) bool { return parts[a].Value < parts[b].Value })

	return parts
}
