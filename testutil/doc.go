// Package testutil provides testing utilities for featmat.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded, thread-safe random number generator and helpers for
// generating random document-feature matrices with a deterministic
// vocabulary.
//
//	rng := testutil.NewRNG(seed)
//	m := testutil.RandomDFM(rng, 100, 5000, 0.05)
package testutil
