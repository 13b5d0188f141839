package xox

import "sync"

// The package-level functions below draw from an implicit generator owned by the
// calling execution context. Go has no thread-local storage, so generators live in a
// sync.Pool: the runtime caches pool items per P, hands an item to one goroutine at a
// time, and no lock is taken on the generator itself.
//
// A cell starts at the zero state, which doubles as the "not yet seeded" sentinel, and
// is seeded from the system entropy source on first use. If the garbage collector drops
// a cell, its successor is seeded again.
//
// It is safe calling these functions from concurrent goroutines.
var local = sync.Pool{
	New: func() any {
		return new(Rng)
	},
}

// With runs f on the calling context's generator and stores the advanced state when f
// returns. Use it to draw many numbers with a single pool access.
//
// f must not retain g or pass it to another goroutine: once With returns, g belongs to
// the pool again and may be handed to any other caller. Calling package-level functions
// from within f is allowed; they use a different generator.
// With panics if the generator has to be seeded and the system entropy source fails.
func With(f func(g *Rng)) {
	g := local.Get().(*Rng)
	seedIfZero(g)
	f(g)
	local.Put(g)
}

// seedIfZero replaces the zero sentinel state with a system-seeded one.
func seedIfZero(g *Rng) {
	if g.x|g.y == 0 {
		*g = FromSystemEntropy()
	}
}

// Uint64 returns a pseudo-random number from the calling context's generator.
func Uint64() (v uint64) {
	With(func(g *Rng) { v = g.Uint64() })
	return
}

// Chunk fills dst with consecutive outputs of the calling context's generator.
func Chunk(dst []uint64) {
	With(func(g *Rng) { g.Chunk(dst) })
}

// Chunk4 returns four consecutive outputs of the calling context's generator.
func Chunk4() (out [4]uint64) {
	With(func(g *Rng) { out = g.Chunk4() })
	return
}

// Split splits off a generator from the calling context's generator.
// If you need to generate many random numbers, split once and use the returned
// generator directly; it needs no pool access.
func Split() (r Rng) {
	With(func(g *Rng) { r = g.Split() })
	return
}

// Fill fills buf with uniformly distributed bytes. An empty buf does not touch the pool.
func Fill(buf []byte) {
	if len(buf) == 0 {
		return
	}
	With(func(g *Rng) { g.Fill(buf) })
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
func Float64() (v float64) {
	With(func(g *Rng) { v = g.Float64() })
	return
}

// Uint32N returns a pseudo-random number in [0,n). For n=0 and n=1 it returns 0.
func Uint32N(n uint32) (v uint32) {
	With(func(g *Rng) { v = g.Uint32N(n) })
	return
}

// Reader is an io.Reader over the package-level generator.
var Reader reader

type reader struct{}

// Read fills p and always returns len(p), nil.
func (reader) Read(p []byte) (int, error) {
	Fill(p)
	return len(p), nil
}
