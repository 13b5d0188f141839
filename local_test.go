package xox

import (
	"errors"
	"sync"
	"testing"

	set3 "github.com/TomTonic/Set3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIfZeroSeedsSentinel(t *testing.T) {
	var g Rng
	seedIfZero(&g)
	lo, hi := g.State()
	assert.NotZero(t, lo|hi)
}

func TestSeedIfZeroKeepsSeededState(t *testing.T) {
	g := FromSeed(testSeed)
	seedIfZero(&g)
	assert.Equal(t, testSeed, g.Seed())
}

func TestSeedIfZeroPanicsOnEntropyFailure(t *testing.T) {
	prev := entropy
	defer func() { entropy = prev }()
	entropy = func([]byte) error { return errors.New("no entropy") }

	var g Rng
	assert.Panics(t, func() { seedIfZero(&g) })
}

func TestWithAdvancesState(t *testing.T) {
	var before, after Rng
	var v uint64
	With(func(g *Rng) {
		before = *g
		v = g.Uint64()
		after = *g
	})
	assert.Equal(t, before.Uint64(), v)
	assert.Equal(t, before, after)
}

func TestWithNestedCallsDoNotRepeat(t *testing.T) {
	var outer, inner uint64
	With(func(g *Rng) {
		inner = Uint64()
		outer = g.Uint64()
	})
	assert.NotEqual(t, outer, inner)
}

func TestPackageFunctions(t *testing.T) {
	assert.NotPanics(t, func() { _ = Uint64() })

	dst := make([]uint64, 9)
	Chunk(dst)
	assert.NotEqual(t, make([]uint64, 9), dst)

	c := Chunk4()
	assert.NotEqual(t, [4]uint64{}, c)

	f := Float64()
	assert.True(t, f >= 0 && f < 1)

	assert.Less(t, Uint32N(10), uint32(10))
	assert.Zero(t, Uint32N(0))

	buf := make([]byte, 21)
	n, err := Reader.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 21, n)
	assert.NotEqual(t, make([]byte, 21), buf)

	Fill(nil)
}

func TestSplitFromLocal(t *testing.T) {
	g1 := Split()
	g2 := Split()
	assert.NotEqual(t, g1, g2)
	assert.NotEqual(t, g1.Uint64(), g2.Uint64())
}

// TestLocalIsolation draws from the package-level generator in many goroutines at once.
// Every generator cell is owned by one goroutine at a time, so no output may repeat.
func TestLocalIsolation(t *testing.T) {
	const workers = 16
	const perWorker = 100_000

	results := make([][]uint64, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]uint64, 0, perWorker)
			for i := range perWorker {
				if i%2 == 0 {
					out = append(out, Uint64())
				} else {
					c := Chunk4()
					out = append(out, c[:]...)
				}
			}
			results[w] = out
		}()
	}
	wg.Wait()

	total := uint32(0)
	set := set3.EmptyWithCapacity[uint64](workers * perWorker * 4)
	for _, out := range results {
		for _, v := range out {
			set.Add(v)
			total++
		}
	}
	assert.Equal(t, total, set.Size(), "repeated output across goroutines")
}

func BenchmarkLocalUint64(b *testing.B) {
	var sink uint64
	for range b.N {
		sink += Uint64()
	}
	_ = sink
}

func BenchmarkLocalUint64Parallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		var sink uint64
		for pb.Next() {
			sink += Uint64()
		}
		_ = sink
	})
}
