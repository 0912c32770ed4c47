// Package testutil provides testing utilities for unitgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating dense and
// mostly-zero value sets.
//
//	rng := testutil.NewRNG(seed)
//	values := rng.SparseValues(1000, 0.05) // about 5% non-zero
//	rows := rng.UniformMatrix(4, 4)        // uniform [-1, 1)
package testutil
