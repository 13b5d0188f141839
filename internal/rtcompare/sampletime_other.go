//go:build !windows

package rtcompare

import "time"

// A relative TimeStamp with the highest possible precision on the current runtime system.
// The values are only comparable on the same computer between two calls to SampleTime() within the same runtime of a program.
type TimeStamp = time.Time

// SampleTime returns a timestamp with the highest possible precision on the current runtime system.
// time.Now carries a monotonic clock reading, which Sub prefers over the wall clock.
func SampleTime() TimeStamp {
	return time.Now()
}

// DiffTimeStamps returns the difference between two timestamps in nanoseconds.
// It returns a negative value if t_later is actually earlier than t_earlier.
func DiffTimeStamps(t_earlier, t_later TimeStamp) int64 {
	return t_later.Sub(t_earlier).Nanoseconds()
}
