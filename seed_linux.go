//go:build linux

package xox

import (
	"errors"

	"golang.org/x/sys/unix"
)

// readSystemEntropy reads from the kernel's random pool via getrandom(2). The call blocks
// only until the pool has been initialized once after boot.
func readSystemEntropy(b []byte) error {
	for len(b) > 0 {
		n, err := unix.Getrandom(b, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}
