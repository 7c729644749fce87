package cryptox

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSha256String(t *testing.T) {
	t.Parallel()

	sum := sha256.Sum256([]byte("topsecret"))
	want := base64.StdEncoding.EncodeToString(sum[:])

	require.Equal(t, want, Sha256String("topsecret"))
	require.NotEqual(t, "topsecret", Sha256String("topsecret"))
}

func TestSha512String(t *testing.T) {
	t.Parallel()

	sum := sha512.Sum512([]byte("topsecret"))
	want := base64.StdEncoding.EncodeToString(sum[:])

	require.Equal(t, want, Sha512String("topsecret"))
}
