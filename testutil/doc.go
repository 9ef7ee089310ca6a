// Package testutil provides testing utilities for chunkedvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random workloads so that property-style tests are
// reproducible.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Ints(1000, 100)     // 1000 values in [0, 100)
//	size := rng.ChunkSize(64)     // chunk size in [1, 64]
//
// # Sequences
//
//	testutil.Sequence(5)          // [0 1 2 3 4]
package testutil
