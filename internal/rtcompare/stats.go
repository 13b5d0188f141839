package rtcompare

import (
	"math"
	"sort"

	"github.com/TomTonic/xox"
)

// Median returns the median of data without modifying it. For an even number of
// elements it returns the mean of the two middle ones.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	dataCopy := make([]float64, len(data))
	copy(dataCopy, data)
	sort.Float64s(dataCopy)

	l := len(dataCopy)
	if l%2 == 0 {
		return (dataCopy[l/2-1] + dataCopy[l/2]) / 2
	}
	return dataCopy[l/2]
}

func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}

	var sum float64
	n := float64(len(data))

	for _, value := range data {
		sum += value
	}
	mean = sum / n

	for _, value := range data {
		variance += (value - mean) * (value - mean)
	}
	variance /= n
	stddev = math.Sqrt(variance)
	return
}

func FloatsEqualWithTolerance(f1, f2, tolerancePercentage float64) bool {
	absTol1 := math.Abs(f1 * tolerancePercentage / 100)
	if f1-absTol1 <= f2 && f1+absTol1 >= f2 {
		return true
	}
	absTol2 := math.Abs(f2 * tolerancePercentage / 100)
	return f2-absTol2 <= f1 && f2+absTol2 >= f1
}

// partition rearranges xs[low..high] around the pivot xs[high] and returns its final index
func partition(xs []float64, low, high int) int {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// quickselect finds the k-th smallest element (0-based index) in expected O(n) time.
// Pivots are drawn from rng.
// see https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k int, rng *xox.Rng) float64 {
	low, high := 0, len(xs)-1
	for low < high {
		pivotIndex := low + int(rng.Uint64N(uint64(high-low+1)))
		xs[pivotIndex], xs[high] = xs[high], xs[pivotIndex] // move pivot to end
		p := partition(xs, low, high)
		switch {
		case p == k:
			return xs[p]
		case p < k:
			low = p + 1
		default:
			high = p - 1
		}
	}
	return xs[k]
}

// QuickMedian returns the median in expected O(n) time, or NaN for an empty slice.
// In case of an even number of elements, it returns the higher of the two middle ones.
// Note: This function modifies the input slice. To avoid this, pass a copy of the slice.
func QuickMedian(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	rng := xox.Split()
	return quickselect(xs, len(xs)/2, &rng)
}
