//go:build !linux

package xox

import "crypto/rand"

func readSystemEntropy(b []byte) error {
	_, err := rand.Read(b)
	return err
}
