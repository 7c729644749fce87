package domain

// AccessTokenType selects the wire format of issued access tokens.
type AccessTokenType int

const (
	AccessTokenTypeJwt AccessTokenType = iota
	AccessTokenTypeReference
)

// TokenUsage controls whether a refresh token survives redemption.
type TokenUsage int

const (
	TokenUsageReuse TokenUsage = iota
	TokenUsageOneTimeOnly
)

// TokenExpiration selects the refresh token expiration mode.
type TokenExpiration int

const (
	TokenExpirationSliding TokenExpiration = iota
	TokenExpirationAbsolute
)
