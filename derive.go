package xox

import (
	"math"
	"math/bits"
)

// Int64 returns a uniformly distributed int64.
func (g *Rng) Int64() int64 {
	return int64(g.Uint64())
}

// Uint32 returns a uniformly distributed uint32 taken from the high half of one output.
func (g *Rng) Uint32() uint32 {
	return uint32(g.Uint64() >> 32)
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
// This function will never return -0.0.
// This function will never return 1.0.
// This function will never return NaN or Inf.
// This function uses 52 random bits for the mantissa. This is the maximum randomness
// that can be represented in a float64 without breaking uniformity.
// See: https://en.wikipedia.org/wiki/Double-precision_floating-point_format
func (g *Rng) Float64() float64 {
	u := g.Uint64() >> 12 // 52 random bits for mantissa

	const exp uint64 = 1023
	return math.Float64frombits(exp<<52|u) - 1.0
}

// Float32 returns a uniformly distributed float32 in [0.0, 1.0).
// This function will never return -0.0, 1.0, NaN or Inf.
// It uses 23 random bits for the mantissa; use Float64 if you need more randomness.
func (g *Rng) Float32() float32 {
	u := uint32(g.Uint64() >> 41) // 23 random bits for mantissa

	const exp uint32 = 127
	return math.Float32frombits(exp<<23|u) - 1.0
}

// Uint32N returns a pseudo-random number in the half-open interval [0,n).
// Use this function for generating random indices or sizes for slices or arrays, for example.
// It avoids division in the common case and compensates for bias.
// For n=0 and n=1, Uint32N returns 0.
//
// For implementation details, see:
//
//	https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
//	https://lemire.me/blog/2016/06/30/fast-random-shuffling
func (g *Rng) Uint32N(n uint32) uint32 {
	v := g.Uint32()
	prod := uint64(v) * uint64(n)
	low := uint32(prod)
	if low < n {
		thresh := -n % n
		for low < thresh {
			v = g.Uint32()
			prod = uint64(v) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// Uint64N is the 64-bit variant of Uint32N. For n=0 and n=1 it returns 0.
func (g *Rng) Uint64N(n uint64) uint64 {
	hi, lo := bits.Mul64(g.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(g.Uint64(), n)
		}
	}
	return hi
}
