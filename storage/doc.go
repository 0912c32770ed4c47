// Package storage holds the standard-unit values of vectors and matrices.
//
// Values are kept row-major behind one of two representations:
//
//   - Dense: a flat []float64 of rows*cols cells.
//   - Sparse: a roaring bitmap of the non-zero positions plus their values in
//     position order. The value of position p is values[Rank(p)-1].
//
// Elementwise operations pick the result representation without scanning the
// result: Plus and Minus return Sparse only when both operands are Sparse,
// Times and Divide return Dense only when both operands are Dense. Broadcast
// operations (IncrementBy, MultiplyBy, ...) mutate in place and keep the
// representation.
//
// Data is not safe for concurrent mutation.
package storage
