package xox

import (
	"encoding/binary"
	"math/bits"
)

// Rng is a fast, non-cryptographic pseudo-random number generator with a 128-bit state
// held in two 64-bit words. Every call to Uint64 advances the state exactly once.
// The state transition is a linear bijection with a single cycle of length 2^128-1 over
// all non-zero states; the all-zero state is a fixed point.
// The output function multiplies both halves of the state (full 128-bit product) so that
// outputs are not a linear function of the state.
// This random number generator is deterministic in the sequence of numbers it generates.
// This random number generator is deterministic in its runtime (i.e. it has a constant runtime).
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe. Give every goroutine its own instance
// (see Split) or use the package-level functions.
// This random number generator has a very small memory footprint (16 bytes).
type Rng struct {
	x uint64
	y uint64
}

// FromState creates a generator from an explicit 128-bit state given as its low and high
// 64-bit words. Any value is accepted, including zero.
func FromState(lo, hi uint64) Rng {
	return Rng{x: lo, y: hi}
}

// FromSeed creates a generator from 16 seed bytes interpreted as a little-endian 128-bit
// integer: bytes 0..7 become the low word, bytes 8..15 the high word.
// No bit pattern is rejected. A good seed should be drawn from a distribution with
// sufficient entropy.
func FromSeed(seed [16]byte) Rng {
	return Rng{
		x: binary.LittleEndian.Uint64(seed[0:8]),
		y: binary.LittleEndian.Uint64(seed[8:16]),
	}
}

// FromSystemEntropy creates a generator seeded with 16 bytes from the operating system's
// entropy source. It panics if the entropy source fails; there is no fallback state.
//
//go:noinline
func FromSystemEntropy() Rng {
	seed, err := SystemSeed()
	if err != nil {
		panic(err)
	}
	return FromSeed(seed)
}

// State returns the low and high words of the current state.
// FromState(g.State()) continues the exact same sequence as g.
func (g *Rng) State() (lo, hi uint64) {
	return g.x, g.y
}

// Uint64 returns the next pseudo-random number in the sequence.
// It has a constant runtime and a high probability to be inlined by the compiler.
func (g *Rng) Uint64() uint64 {
	x, y := g.x, g.y
	a := bits.RotateLeft64(x, -7) ^ y
	b := x ^ (x >> 19)
	hi, lo := bits.Mul64(x, y)
	g.x, g.y = a, b
	return a + (lo ^ hi)
}

// Chunk fills dst with len(dst) consecutive outputs, in order.
// The result is identical to calling Uint64 len(dst) times.
func (g *Rng) Chunk(dst []uint64) {
	x, y := g.x, g.y
	for i := range dst {
		a := bits.RotateLeft64(x, -7) ^ y
		b := x ^ (x >> 19)
		hi, lo := bits.Mul64(x, y)
		dst[i] = a + (lo ^ hi)
		x, y = a, b
	}
	g.x, g.y = x, y
}

// Chunk4 returns the next four outputs as an array.
func (g *Rng) Chunk4() (out [4]uint64) {
	g.Chunk(out[:])
	return
}

// Split returns a new generator whose state is made of the next two outputs of g.
// g is advanced by exactly two steps. The returned generator does not refer to g and
// may be handed to another goroutine.
func (g *Rng) Split() Rng {
	p := g.Uint64()
	q := g.Uint64()
	return Rng{x: p, y: q}
}

// Fill writes uniformly distributed bytes into buf. The bytes are the little-endian
// encodings of consecutive outputs; a tail of fewer than 8 bytes takes the low-order
// bytes of one more output. Exactly ceil(len(buf)/8) outputs are drawn, so an empty
// buf leaves the state untouched.
func (g *Rng) Fill(buf []byte) {
	for len(buf) >= 8 {
		binary.LittleEndian.PutUint64(buf, g.Uint64())
		buf = buf[8:]
	}
	if len(buf) == 0 {
		return
	}
	v := g.Uint64()
	for i := range buf {
		buf[i] = byte(v)
		v >>= 8
	}
}

// Read fills p via Fill and always returns len(p), nil.
// It makes *Rng an io.Reader.
func (g *Rng) Read(p []byte) (int, error) {
	g.Fill(p)
	return len(p), nil
}
