//go:build windows

package rtcompare

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// TimeStamp is a raw QueryPerformanceCounter reading. time.Now on Windows only advances in
// coarse steps, too coarse for timing generator loops, so the counter is read directly.
// Readings are meaningful only as differences within one process.
type TimeStamp = int64

var (
	kernel32       = windows.NewLazySystemDLL("kernel32.dll")
	procQPFreq     = kernel32.NewProc("QueryPerformanceFrequency")
	procQPCounter  = kernel32.NewProc("QueryPerformanceCounter")
	ticksPerSecond = queryFrequency()
)

func queryFrequency() int64 {
	var freq int64
	if r1, _, err := procQPFreq.Call(uintptr(unsafe.Pointer(&freq))); r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// SampleTime reads the performance counter.
func SampleTime() TimeStamp {
	var ticks int64
	procQPCounter.Call(uintptr(unsafe.Pointer(&ticks)))
	return ticks
}

// DiffTimeStamps returns the nanoseconds between two counter readings, negative if
// t_later was taken first.
func DiffTimeStamps(t_earlier, t_later TimeStamp) int64 {
	return ticksToNs(t_later-t_earlier, ticksPerSecond)
}
