// Package infogain computes information-theoretic splitting criteria over a
// tabular dataset and selects the attribute that best separates the classes,
// the step an ID3-style decision-tree builder repeats at every node.
//
// What
//
//   - Entropy(ds)                          — label entropy H(S) in bits.
//   - AverageAttributeInformation(ds, a)   — Σ_v |S_v|/|S| · H(S_v).
//   - InformationGain(ds, a)               — H(S) − I(a), rounded to 4 places.
//   - SelectBestAttribute(ds)              — gains of all attributes + argmax.
//
// Supporting types:
//
//   - Dataset: immutable float64 table; last column is the class label.
//   - ClassDistribution: label → count for a row subset (ClassCounts).
//   - Partition: rows sharing one attribute value (PartitionBy).
//   - GainTable: attribute index → gain, in attribute order.
//
// Numerics
//
//	Every probability is guarded as log2(p + eps) with eps = 1e-10 so log2(0)
//	is never evaluated. A pure subset (one label) has entropy exactly 0.
//	Distinct values are visited in ascending order, so results are
//	bit-for-bit reproducible.
//
// Determinism
//
//	SelectBestAttribute resolves ties toward the lowest attribute index, with
//	or without WithParallelism.
//
// Options
//
//   - WithEpsilon(eps)       log guard (default 1e-10).
//   - WithPrecision(places)  gain rounding places (default 4).
//   - WithRounding(mode)     RoundHalfEven (default) or RoundHalfAwayFromZero.
//   - WithLogger(l)          *slog.Logger for debug records (default: discard).
//   - WithParallelism(n)     evaluate up to n attributes concurrently.
//
// Errors
//
//   - ErrNilDataset, ErrEmptyDataset, ErrTooFewColumns, ErrRaggedRows,
//     ErrNonFinite          — construction and nil checks.
//   - ErrInvalidAttribute   — attribute index outside [0, columns-2].
//   - ErrOptionViolation    — invalid option value.
//
// Usage
//
//	ds, err := infogain.NewDataset([][]float64{
//		{0, 0, 0},
//		{0, 1, 0},
//		{1, 0, 1},
//		{1, 1, 1},
//	})
//	if err != nil {
//		// handle ErrEmptyDataset, ErrTooFewColumns, ...
//	}
//	gains, best, err := infogain.SelectBestAttribute(ds)
//	// gains = {0: 1, 1: 0}, best = 0
package infogain
