// Package testutil provides testing utilities for ittybitty.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a reference model that mirrors every
// BitSet mutation into well-known bitmap implementations.
//
// # Random Indices
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Indices(64, 2048) // 64 distinct indices in [0, 2048)
//
// # Reference Model
//
//	o := testutil.NewOracle()
//	o.Set(17, true)
//	o.Next(0)   // 17, via bits-and-blooms/bitset
//	o.Sorted()  // [17], via roaring
package testutil
