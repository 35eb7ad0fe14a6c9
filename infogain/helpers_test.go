// SPDX-License-Identifier: MIT
// Package infogain_test contains shared fixtures.
//
// Purpose:
//   - Provide small, deterministic datasets with hand-checked gains.
//   - Provide a seeded generator for property tests.

package infogain_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/infogain/infogain"
	"github.com/stretchr/testify/require"
)

// tennisRows is the classic 14-row weather table.
// Columns: outlook(0 sunny,1 overcast,2 rain), temperature(0 hot,1 mild,2 cool),
// humidity(0 high,1 normal), wind(0 weak,1 strong), play(0 no,1 yes).
var tennisRows = [][]float64{
	{0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0},
	{1, 0, 0, 0, 1},
	{2, 1, 0, 0, 1},
	{2, 2, 1, 0, 1},
	{2, 2, 1, 1, 0},
	{1, 2, 1, 1, 1},
	{0, 1, 0, 0, 0},
	{0, 2, 1, 0, 1},
	{2, 1, 1, 0, 1},
	{0, 1, 1, 1, 1},
	{1, 1, 0, 1, 1},
	{1, 0, 1, 0, 1},
	{2, 1, 0, 1, 0},
}

// Reference values for tennisRows (eps = 1e-10).
const (
	tennisEntropy = 0.9402859583820921
	tennisAvgInfo = 0.6935361386900926 // outlook
)

var tennisGains = []float64{0.2467, 0.0292, 0.1518, 0.0481}

// mustDataset builds a Dataset or fails the test.
func mustDataset(t testing.TB, rows [][]float64) *infogain.Dataset {
	t.Helper()
	ds, err := infogain.NewDataset(rows)
	require.NoError(t, err)

	return ds
}

// randomRows returns an n×(attrs+1) table with small categorical values.
// Attribute j takes values in [0, j+2); labels take values in [0, classes).
func randomRows(rng *rand.Rand, n, attrs, classes int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, attrs+1)
		for j := 0; j < attrs; j++ {
			rows[i][j] = float64(rng.Intn(j + 2))
		}
		rows[i][attrs] = float64(rng.Intn(classes))
	}

	return rows
}
