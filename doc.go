// Package xox implements a fast, non-cryptographic pseudo-random number generator with
// 64-bit outputs and a 128-bit state.
//
// The state is two 64-bit words (x, y). Each step computes
//
//	a = rotr(x, 7) ^ y
//	b = x ^ x>>19
//	out = a + (lo(x*y) ^ hi(x*y))
//
// and moves to the state (a, b). The transition is linear over GF(2) and has a single
// cycle through all 2^128-1 non-zero states. The output mixes both words through the full
// 128-bit product, so it is not a linear function of the state.
//
// Generators are plain values: copy one to save its state, use Split to derive an
// independent generator for another goroutine. The package-level functions draw from
// an implicit generator per execution context and are safe for concurrent use.
//
// All byte-level encodings (Fill, Seed, MarshalBinary) are little-endian.
package xox
