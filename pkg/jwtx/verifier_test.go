package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHS256VerifierRoundTrip(t *testing.T) {
	t.Parallel()

	key := []byte("test-signing-key")
	v := NewVerifierHS256(key, "idprov", []string{"clientadmin"})

	claims := NewClaims("42", []string{"configuration:write"}, "idprov", []string{"clientadmin"}, time.Minute, time.Now())
	token, err := SignHS256(key, claims)
	require.NoError(t, err)

	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "42", got.Subject)
	require.Equal(t, []string{"configuration:write"}, got.Scopes)

	id, err := got.SubjectID()
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestHS256VerifierRejectsBadSignature(t *testing.T) {
	t.Parallel()

	claims := NewClaims("42", nil, "idprov", nil, time.Minute, time.Now())
	token, err := SignHS256([]byte("key-a"), claims)
	require.NoError(t, err)

	v := NewVerifierHS256([]byte("key-b"), "", nil)
	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256VerifierRejectsExpired(t *testing.T) {
	t.Parallel()

	key := []byte("test-signing-key")
	claims := NewClaims("42", nil, "idprov", nil, time.Minute, time.Now().Add(-time.Hour))
	token, err := SignHS256(key, claims)
	require.NoError(t, err)

	v := NewVerifierHS256(key, "", nil)
	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256VerifierChecksIssuerAndAudience(t *testing.T) {
	t.Parallel()

	key := []byte("test-signing-key")
	claims := NewClaims("42", nil, "other", []string{"other-api"}, time.Minute, time.Now())
	token, err := SignHS256(key, claims)
	require.NoError(t, err)

	_, err = NewVerifierHS256(key, "idprov", nil).Verify(token)
	require.ErrorIs(t, err, ErrIssuer)

	_, err = NewVerifierHS256(key, "other", []string{"clientadmin"}).Verify(token)
	require.ErrorIs(t, err, ErrAudience)
}

func TestSubjectIDRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	claims := Claims{}
	claims.Subject = "not-a-number"
	_, err := claims.SubjectID()
	require.ErrorIs(t, err, ErrInvalidClaim)
}
