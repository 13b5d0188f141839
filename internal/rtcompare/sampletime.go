package rtcompare

import (
	"math"
)

// calibrationRounds back-to-back timestamp pairs are taken to find the timer's resolution.
const calibrationRounds = 10_000_000

var (
	// precision caches the smallest non-zero distance between two SampleTime() readings in
	// nanoseconds; -1 means not yet calibrated.
	precision = int64(-1)
)

// GetSampleTimePrecision returns the resolution of SampleTime() in nanoseconds, calibrating
// it on first use. Expect 100ns on Windows and 20ns to 100ns on Linux and MacOS.
// A single call of a generator takes about a nanosecond, far below this resolution, so
// MeasureNsPerCall always times loops of many calls and divides.
func GetSampleTimePrecision() int64 {
	if precision == int64(-1) {
		precision = calibratePrecision()
	}
	return precision
}

func calibratePrecision() int64 {
	smallest := int64(math.MaxInt64)
	for range calibrationRounds {
		t1 := SampleTime()
		t2 := SampleTime()
		if d := DiffTimeStamps(t1, t2); d > 0 && d < smallest {
			smallest = d
		}
	}
	return smallest
}

// ticksToNs converts a tick count of a counter running at freq ticks per second to
// nanoseconds. Whole seconds and the remainder are converted separately, so long timed
// loops do not overflow int64.
func ticksToNs(ticks, freq int64) int64 {
	const nsPerSec = int64(1_000_000_000)
	sec, rem := ticks/freq, ticks%freq
	return sec*nsPerSec + rem*nsPerSec/freq
}
