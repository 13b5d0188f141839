// Command xox-bench measures the per-call cost of the xox generator and of a set of
// well-known generators, and reports the confidence that xox is faster than each of them.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"

	"github.com/TomTonic/xox"
	"github.com/TomTonic/xox/internal/baseline"
	"github.com/TomTonic/xox/internal/rtcompare"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type args struct {
	Repeats    int       `name:"repeats" short:"r" default:"31" env:"XOX_BENCH_REPEATS" help:"number of timed repeats per generator (at least 11)"`
	Loops      int       `name:"loops" short:"l" default:"1000000" env:"XOX_BENCH_LOOPS" help:"calls per timed repeat"`
	Precision  uint64    `name:"precision" short:"p" default:"10000" env:"XOX_BENCH_PRECISION" help:"bootstrap repetitions"`
	Thresholds []float64 `name:"threshold" short:"t" default:"0,0.1,0.25" env:"XOX_BENCH_THRESHOLDS" help:"relative speedups to test"`
}

var sink uint64

// uint64er hides the concrete generator type so that calls through it are not inlined.
type uint64er interface {
	Uint64() uint64
}

type candidate struct {
	name string
	loop func(n int)
}

func viaInterface(g uint64er) func(n int) {
	return func(n int) {
		for range n {
			sink += g.Uint64()
		}
	}
}

func candidates(seed [16]byte) []candidate {
	g := xox.FromSeed(seed)
	gi := xox.FromSeed(seed)
	xs := baseline.NewXorShiftStar(seed)
	xo := baseline.NewXoroshiro128PP(seed)
	ps := xox.FromSeed(seed)
	pcg := rand.NewPCG(ps.State())
	chacha := rand.NewChaCha8([32]byte(append(seed[:], seed[:]...)))

	return []candidate{
		{"xox", func(n int) {
			for range n {
				sink += g.Uint64()
			}
		}},
		{"xox (noinline)", viaInterface(&gi)},
		{"xox (package-level)", func(n int) {
			for range n {
				sink += xox.Uint64()
			}
		}},
		{"xorshift*", func(n int) {
			for range n {
				sink += xs.Uint64()
			}
		}},
		{"xoroshiro128++", func(n int) {
			for range n {
				sink += xo.Uint64()
			}
		}},
		{"pcg-dxsm (math/rand/v2)", viaInterface(pcg)},
		{"chacha8 (math/rand/v2)", viaInterface(chacha)},
	}
}

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading dotenv failed: %s", err)
	}
}

func main() {
	var a args
	_ = kong.Parse(&a, kong.Description("Compare the speed of xox with other generators."))

	seed, err := xox.SystemSeed()
	if err != nil {
		log.Fatalln(err)
	}
	if err := run(os.Stdout, a, candidates(seed)); err != nil {
		log.Fatalln(err)
	}
}

// run measures all candidates and compares the first one against the rest.
func run(w io.Writer, a args, cs []candidate) error {
	if a.Repeats < rtcompare.MinimumDataPoints {
		return fmt.Errorf("repeats must be at least %d, got %d", rtcompare.MinimumDataPoints, a.Repeats)
	}
	if a.Loops <= 0 {
		return fmt.Errorf("loops must be positive, got %d", a.Loops)
	}

	times := make([][]float64, len(cs))
	for i, c := range cs {
		times[i] = rtcompare.MeasureNsPerCall(a.Repeats, a.Loops, c.loop)
		mean, _, stddev := rtcompare.Statistics(times[i])
		fmt.Fprintf(w, "%-26s median %6.2f ns/call  mean %6.2f ± %.2f ns\n",
			c.name, rtcompare.Median(times[i]), mean, stddev)
	}

	for i := 1; i < len(cs); i++ {
		results, err := rtcompare.CompareRuntimes(times[0], times[i], a.Thresholds, a.Precision)
		if err != nil {
			return fmt.Errorf("compare %s with %s: %w", cs[0].name, cs[i].name, err)
		}
		for _, r := range results {
			fmt.Fprintf(w, "%s vs %s: speedup ≥ %.0f%% → confidence %.4f\n",
				cs[0].name, cs[i].name, r.RelativeSpeedupSampleAvsSampleB*100.0, r.Confidence)
		}
	}
	return nil
}
