// Package cryptox provides the digest helpers used when storing client
// secrets. Stored values are the base64 (standard encoding) of the raw
// SHA digest.
package cryptox

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
)

// Sha256String returns the base64-encoded SHA-256 digest of value.
func Sha256String(value string) string {
	sum := sha256.Sum256([]byte(value))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Sha512String returns the base64-encoded SHA-512 digest of value.
func Sha512String(value string) string {
	sum := sha512.Sum512([]byte(value))
	return base64.StdEncoding.EncodeToString(sum[:])
}
