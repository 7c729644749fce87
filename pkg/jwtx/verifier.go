package jwtx

import (
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256Verifier verifies tokens signed with a shared HMAC key. The admin
// service does not issue tokens itself; the key is shared with the identity
// engine that does.
type HS256Verifier struct {
	key      []byte
	issuer   string
	audience []string
}

func NewVerifierHS256(key []byte, issuer string, audience []string) *HS256Verifier {
	return &HS256Verifier{key: key, issuer: issuer, audience: audience}
}

func (v *HS256Verifier) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return v.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(30*time.Second),
	)
	switch {
	case err == nil && parsed.Valid:
		// fall through to claim checks
	case errors.Is(err, jwt.ErrTokenMalformed):
		return Claims{}, ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpired
	default:
		return Claims{}, ErrInvalidClaim
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return Claims{}, ErrIssuer
	}
	if len(v.audience) > 0 && !hasAnyAudience(claims.Audience, v.audience) {
		return Claims{}, ErrAudience
	}
	return claims, nil
}

func hasAnyAudience(have jwt.ClaimStrings, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}

// SignHS256 issues a token for the claims with the shared key. Used by tests
// and local tooling; production tokens come from the identity engine.
func SignHS256(key []byte, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
