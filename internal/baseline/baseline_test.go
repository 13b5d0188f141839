package baseline

import (
	"encoding/binary"
	"testing"

	set3 "github.com/TomTonic/Set3"
	"github.com/stretchr/testify/assert"
)

var testSeed = [16]byte([]byte("autovivification"))

func TestXorShiftStarZeroSeed(t *testing.T) {
	g := NewXorShiftStar([16]byte{})
	assert.NotZero(t, g.State)
}

func TestXorShiftStarKnownValues(t *testing.T) {
	g := &XorShiftStar{State: 1}
	// x = 1 ^ 1<<25 ^ (1^1<<25)>>27 = 0x2000001
	x := uint64(0x2000001)
	assert.Equal(t, x*0x2545F4914F6CDD1D, g.Uint64())
	assert.Equal(t, uint64(0x2000001), g.State)
}

func TestXoroshiro128PPKnownValues(t *testing.T) {
	g := &Xoroshiro128PP{X: 1, Y: 2}
	// rotl(1+2, 17) + 1
	assert.Equal(t, uint64(3<<17+1), g.Uint64())
}

func TestSeedsAreLittleEndian(t *testing.T) {
	seed := [16]byte{0x02, 0x01, 0, 0, 0, 0, 0, 0x80, 0x04, 0x03, 0, 0, 0, 0, 0, 0x40}
	xs := NewXorShiftStar(seed)
	assert.Equal(t, uint64(0x8000000000000102), xs.State)

	xo := NewXoroshiro128PP(seed)
	assert.Equal(t, uint64(0x8000000000000103), xo.X, "lowest bit forced to 1")
	assert.Equal(t, uint64(0x4000000000000304), xo.Y)

	xo = NewXoroshiro128PP(testSeed)
	assert.Equal(t, binary.LittleEndian.Uint64(testSeed[8:]), xo.Y)
}

func TestXoroshiro128PPSeedNeverZero(t *testing.T) {
	g := NewXoroshiro128PP([16]byte{})
	assert.Equal(t, uint64(1), g.X)
}

func TestBaselineSequencesDoNotRepeat(t *testing.T) {
	for name, next := range map[string]func() uint64{
		"xorshift*":      NewXorShiftStar(testSeed).Uint64,
		"xoroshiro128++": NewXoroshiro128PP(testSeed).Uint64,
	} {
		t.Run(name, func(t *testing.T) {
			limit := uint32(1_000_000)
			set := set3.EmptyWithCapacity[uint64](limit * 7 / 5)
			for range limit {
				set.Add(next())
			}
			assert.True(t, set.Size() == limit, "sequence < limit")
		})
	}
}
