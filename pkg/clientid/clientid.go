// Package clientid generates external client identifiers.
//
// An identifier folds 16 bytes of cryptographically-sourced randomness into a
// numeric accumulator, offsets it by the current time and formats the result
// as hex. Collisions are avoided by entropy alone; the store does not enforce
// uniqueness.
package clientid

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// New returns a new external client identifier.
func New() string {
	return FromParts(uuid.New(), time.Now())
}

// FromParts derives the identifier from the given random bytes and timestamp.
// Deterministic for fixed inputs, which keeps it testable; New never repeats
// in practice because the bytes come from crypto/rand.
func FromParts(random [16]byte, now time.Time) string {
	acc := uint64(1)
	for _, b := range random {
		acc *= uint64(b) + 1
	}
	acc -= uint64(now.UnixNano())
	return strconv.FormatUint(acc, 16)
}
