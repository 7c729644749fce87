package clientid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromPartsDeterministic(t *testing.T) {
	t.Parallel()

	random := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	at := time.Unix(1700000000, 0)

	first := FromParts(random, at)
	second := FromParts(random, at)
	require.Equal(t, first, second)
	require.NotEmpty(t, first)
}

func TestFromPartsVariesWithInputs(t *testing.T) {
	t.Parallel()

	random := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	other := random
	other[0] = 99
	at := time.Unix(1700000000, 0)

	require.NotEqual(t, FromParts(random, at), FromParts(other, at))
	require.NotEqual(t, FromParts(random, at), FromParts(random, at.Add(time.Nanosecond)))
}

func TestNewDoesNotRepeat(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := New()
		require.NotEmpty(t, id)
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate identifier generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
