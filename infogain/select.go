// SPDX-License-Identifier: MIT

package infogain

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"
)

// GainTable maps attribute index → rounded information gain.
// Index i holds the gain of attribute column i, so iteration order is the
// attribute order 0..N-1.
type GainTable []float64

// Len returns the number of attributes in the table.
func (t GainTable) Len() int { return len(t) }

// Gain returns the gain of attr and whether attr is in the table.
func (t GainTable) Gain(attr int) (float64, bool) {
	if attr < 0 || attr >= len(t) {
		return 0, false
	}

	return t[attr], true
}

// Best returns the index of the maximum gain, preferring the lowest index
// among ties. It returns -1 for an empty table.
func (t GainTable) Best() int {
	if len(t) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(t); i++ {
		if t[i] > t[best] {
			best = i
		}
	}

	return best
}

// Ranked returns attribute indices ordered by descending gain; ties keep
// ascending index order.
func (t GainTable) Ranked() []int {
	idx := make([]int, len(t))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return t[idx[a]] > t[idx[b]] })

	return idx
}

// Map returns the table as a map keyed by attribute index.
func (t GainTable) Map() map[int]float64 {
	out := make(map[int]float64, len(t))
	for i, g := range t {
		out[i] = g
	}

	return out
}

// String renders the table as {0: 0.3113, 1: 0.0488}.
func (t GainTable) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, g := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(strconv.FormatFloat(g, 'f', -1, 64))
	}
	sb.WriteByte('}')

	return sb.String()
}

// SelectBestAttribute computes InformationGain for every attribute of ds and
// returns the full table together with the index of the highest gain. Ties
// resolve to the lowest attribute index.
//
// The dataset entropy is computed once and shared by all attributes. With
// WithParallelism(n), n > 1, attributes are evaluated on up to n goroutines;
// each goroutine writes only its own table slot and the selection scan is
// unchanged, so the result equals the sequential one.
//
// Errors: ErrOptionViolation, ErrNilDataset.
func SelectBestAttribute(ds *Dataset, opts ...Option) (GainTable, int, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, -1, opErrorf(opSelectBest, err)
	}
	if err = ds.validate(); err != nil {
		return nil, -1, opErrorf(opSelectBest, err)
	}

	h, err := labelEntropy(ds.Labels(), o.Epsilon)
	if err != nil {
		return nil, -1, opErrorf(opSelectBest, err)
	}

	n := ds.NumAttributes()
	table := make(GainTable, n)
	gainAt := func(attr int) error {
		g, err := roundGain(h-averageInformation(ds, attr, o.Epsilon), o)
		if err != nil {
			return err
		}
		table[attr] = g
		o.Logger.Debug("information gain",
			slog.Int("attribute", attr),
			slog.Float64("gain", g),
		)

		return nil
	}

	if o.Parallelism > 1 && n > 1 {
		p := pool.New().WithErrors().WithMaxGoroutines(min(o.Parallelism, n))
		for attr := 0; attr < n; attr++ {
			attr := attr
			p.Go(func() error { return gainAt(attr) })
		}
		if err = p.Wait(); err != nil {
			return nil, -1, opErrorf(opSelectBest, opErrorf(opParallelGains, err))
		}
	} else {
		for attr := 0; attr < n; attr++ {
			if err = gainAt(attr); err != nil {
				return nil, -1, opErrorf(opSelectBest, err)
			}
		}
	}

	best := table.Best()
	o.Logger.Debug("attribute selected",
		slog.Int("selected", best),
		slog.Float64("gain", table[best]),
		slog.Int("attributes", n),
		slog.Float64("entropy", h),
	)

	return table, best, nil
}
