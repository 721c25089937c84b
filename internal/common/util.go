// Package common contains small helpers shared across client components.
package common

import "crypto/rand"

// GenerateRandByteArray returns n cryptographically random bytes. It panics
// if the system RNG fails, which is not a recoverable condition.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites b with zeros so sensitive material such as a
// password does not linger in memory. Nil-safe.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
