package xox

import (
	"encoding/binary"
	"errors"
)

const marshalTag = "xox:"

var errUnmarshal = errors.New("invalid xox state encoding")

// Seed returns the current state as 16 little-endian bytes.
// FromSeed(g.Seed()) continues the exact same sequence as g.
func (g *Rng) Seed() (seed [16]byte) {
	binary.LittleEndian.PutUint64(seed[0:8], g.x)
	binary.LittleEndian.PutUint64(seed[8:16], g.y)
	return
}

// AppendBinary implements the encoding.BinaryAppender interface.
// The encoding is the tag "xox:" followed by the state in little-endian order.
func (g *Rng) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, marshalTag...)
	b = binary.LittleEndian.AppendUint64(b, g.x)
	b = binary.LittleEndian.AppendUint64(b, g.y)
	return b, nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (g *Rng) MarshalBinary() ([]byte, error) {
	return g.AppendBinary(make([]byte, 0, len(marshalTag)+16))
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (g *Rng) UnmarshalBinary(data []byte) error {
	if len(data) != len(marshalTag)+16 || string(data[:len(marshalTag)]) != marshalTag {
		return errUnmarshal
	}
	data = data[len(marshalTag):]
	g.x = binary.LittleEndian.Uint64(data[0:8])
	g.y = binary.LittleEndian.Uint64(data[8:16])
	return nil
}
