package baseline

import (
	"encoding/binary"
	"math/bits"
)

// Xoroshiro128PP is xoroshiro128++ by Blackman and Vigna, with a period of 2^128-1.
type Xoroshiro128PP struct {
	X, Y uint64
}

// NewXoroshiro128PP seeds the generator from a little-endian 128-bit seed whose lowest
// bit is forced to 1 so the state is never zero.
func NewXoroshiro128PP(seed [16]byte) *Xoroshiro128PP {
	return &Xoroshiro128PP{X: binary.LittleEndian.Uint64(seed[0:8]) | 1, Y: binary.LittleEndian.Uint64(seed[8:16])}
}

// Uint64 returns the next pseudo-random number in the sequence.
func (g *Xoroshiro128PP) Uint64() uint64 {
	x, y := g.X, g.Y
	z := bits.RotateLeft64(x+y, 17) + x
	y ^= x
	g.X = bits.RotateLeft64(x, 49) ^ y ^ y<<21
	g.Y = bits.RotateLeft64(y, 28)
	return z
}
