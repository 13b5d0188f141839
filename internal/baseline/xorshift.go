// Package baseline holds small, well-known generators that xox is measured against.
// None of them is cryptographically secure and none is thread-safe.
package baseline

import "encoding/binary"

// XorShiftStar is the 64-bit xorshift* generator
// (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// It has a period of 2^64-1 and a 64-bit state which must not be zero.
type XorShiftStar struct {
	State uint64
}

// NewXorShiftStar seeds the generator from the low word of a 16-byte seed.
// A zero word is replaced by a fixed non-zero constant.
func NewXorShiftStar(seed [16]byte) *XorShiftStar {
	s := binary.LittleEndian.Uint64(seed[0:8])
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &XorShiftStar{State: s}
}

// Uint64 returns the next pseudo-random number in the sequence.
func (g *XorShiftStar) Uint64() uint64 {
	x := g.State
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	g.State = x
	return x * 0x2545F4914F6CDD1D
}
