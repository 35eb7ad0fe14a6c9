// Package matrix provides the two-dimensional float64 storage the infogain
// package computes over.
//
// What & Why:
//
//	The Matrix interface provides a uniform abstraction over two-dimensional
//	mutable arrays of float64 values. Dense is the concrete row-major
//	implementation: a flat buffer indexed as i*cols + j, bounds-checked on
//	every public accessor, with an optional numeric policy that rejects NaN
//	and ±Inf on ingestion.
//
//	Tabular datasets arrive as [][]float64; NewDenseFromRows copies them into
//	a Dense once, after which column reads (Col) are cheap strided copies.
//
// Errors:
//
//	ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch, ErrOutOfRange,
//	ErrNaNInf. All are wrapped with call-site context; match with errors.Is.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time.
//	Row() is O(cols), Col() is O(rows), Clone() is O(rows*cols).
package matrix
