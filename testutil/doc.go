// Package testutil provides testing utilities for annostore.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible annotation workloads.
//
// # Random Spans
//
//	rng := testutil.NewRNG(seed)
//	spans := rng.Spans(1000, 10_000, 20) // 1000 spans over a 10k text
//
// # Skewed Types
//
//	types := rng.ZipfTypes(1000, 8, 1.5) // few types hold most entries
package testutil
