// Package rtcompare measures per-call runtimes of generators and estimates, by bootstrap
// resampling, the confidence that one is faster than another by a given relative margin.
package rtcompare

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"slices"

	"github.com/TomTonic/xox"
)

type RTcomparisonResult struct {
	RelativeSpeedupSampleAvsSampleB float64
	Confidence                      float64
}

const MinimumDataPoints = 11

var ErrTooFewDataPoints = errors.New("not enough data points")

// CompareRuntimes compares two samples of runtimes (e.g. nanoseconds per call) and computes
// the confidence that sample A is faster than sample B by at least each of the given relative
// speedups. The precisionLevel parameter is the number of bootstrap repetitions (higher values
// yield more precise results but take longer to compute).
// If there are not enough data points in either sample, an error wrapping ErrTooFewDataPoints
// is returned.
func CompareRuntimes(sampleA, sampleB []float64, relativeSpeedupsToTest []float64, precisionLevel uint64) (result []RTcomparisonResult, err error) {
	if len(sampleA) < MinimumDataPoints || len(sampleB) < MinimumDataPoints {
		return nil, fmt.Errorf("%w: need at least %d runtimes for each of A and B, got %d and %d",
			ErrTooFewDataPoints, MinimumDataPoints, len(sampleA), len(sampleB))
	}
	if len(relativeSpeedupsToTest) == 0 {
		relativeSpeedupsToTest = []float64{0.0}
	}
	thresholds := slices.Clone(relativeSpeedupsToTest)
	slices.Sort(thresholds)

	rng := xox.Split()
	conf := BootstrapConfidence(sampleA, sampleB, thresholds, precisionLevel, &rng)

	for _, t := range thresholds {
		result = append(result, RTcomparisonResult{
			RelativeSpeedupSampleAvsSampleB: t,
			Confidence:                      conf[t],
		})
	}
	return result, nil
}

// bootstrapSample returns a sample drawn with replacement from xs, of the same length.
// The input slice is not modified.
func bootstrapSample(xs []float64, rng *xox.Rng) []float64 {
	n := len(xs)
	sample := make([]float64, n)
	if n == 0 {
		return sample
	}
	for i := range n {
		sample[i] = xs[rng.Uint32N(uint32(n))]
	}
	return sample
}

// BootstrapConfidence estimates the probability that the relative speedup of A over B
// meets or exceeds each threshold using reps bootstrap replicates drawn with rng.
//
// Each replicate resamples A and B and evaluates
//
//	delta = 1 - median(A_sample)/median(B_sample)
//
// A positive delta indicates A is faster than B by that relative amount.
//
// Edge cases:
//   - If reps is zero every threshold maps to NaN.
//   - A replicate with a NaN median counts for no threshold.
//   - Equal medians (including both zero or both the same infinity) give delta = 0.
//   - A median of B smaller than a scale-aware epsilon is replaced by that epsilon.
//
// Passing the same seeded rng reproduces the result.
func BootstrapConfidence(A, B []float64, thresholds []float64, reps uint64, rng *xox.Rng) (confidenceForThreshold map[float64]float64) {
	confidenceForThreshold = make(map[float64]float64, len(thresholds))

	if reps == 0 {
		for _, threshold := range thresholds {
			confidenceForThreshold[threshold] = math.NaN()
		}
		return confidenceForThreshold
	}

	counts := make(map[float64]uint64, len(thresholds))

	for range reps {
		medA := QuickMedian(bootstrapSample(A, rng))
		medB := QuickMedian(bootstrapSample(B, rng))

		var delta float64
		switch {
		case math.IsNaN(medA) || math.IsNaN(medB):
			delta = math.NaN()
		case medA == medB:
			delta = 0.0
		default:
			const rel = 1e-12
			eps := math.Max(math.Abs(medB)*rel, math.SmallestNonzeroFloat64)
			denom := medB
			if math.Abs(medB) < eps {
				denom = eps
			}
			delta = 1.0 - medA/denom
		}

		for _, threshold := range thresholds {
			if delta >= threshold {
				counts[threshold]++
			}
		}
	}

	for _, threshold := range thresholds {
		confidenceForThreshold[threshold] = float64(counts[threshold]) / float64(reps)
	}
	return confidenceForThreshold
}

// MeasureNsPerCall runs loop(innerLoops) repeats times and returns the average time of one
// inner iteration in nanoseconds for every repeat. A garbage collection is forced before
// each repeat so that it does not fall into a measurement.
func MeasureNsPerCall(repeats, innerLoops int, loop func(n int)) []float64 {
	times := make([]float64, 0, repeats)
	for range repeats {
		runtime.GC()
		t1 := SampleTime()
		loop(innerLoops)
		t2 := SampleTime()
		times = append(times, float64(DiffTimeStamps(t1, t2))/float64(innerLoops))
	}
	return times
}
