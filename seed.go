package xox

import (
	"fmt"
)

// entropy fills its argument with bytes from the operating system's random source.
// Tests replace it to simulate a failing source.
var entropy = readSystemEntropy

// SystemSeed returns 16 bytes from the operating system's entropy source, suitable as an
// argument for FromSeed. The error is non-nil only if the operating system could not
// deliver the requested bytes; the call is not retried.
func SystemSeed() (seed [16]byte, err error) {
	if err = entropy(seed[:]); err != nil {
		return [16]byte{}, fmt.Errorf("read system seed: %w", err)
	}
	return seed, nil
}
