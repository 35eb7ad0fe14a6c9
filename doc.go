// Package infogain is the root of a small, deterministic toolkit for choosing
// decision-tree splits by information gain.
//
// What is inside?
//
//	matrix/    — Dense row-major float64 storage with NaN/Inf policy and
//	             sentinel errors; the backing store of every dataset.
//	infogain/  — Dataset, label entropy, average attribute information,
//	             information gain and best-attribute selection.
//
// Guarantees
//
//   - Datasets are immutable after construction and safe for concurrent reads.
//   - Results are reproducible: distinct values are visited in ascending
//     order and ties resolve to the lowest attribute index.
//   - Failures are reported as wrapped sentinel errors, never panics.
//   - The library is silent by default; pass a *slog.Logger to observe it.
//
// Quick start
//
//	ds, _ := infogain.NewDataset(rows) // last column = class label
//	gains, best, err := infogain.SelectBestAttribute(ds)
//
// Building a full tree, pruning and continuous-feature discretization are
// left to callers.
package infogain
