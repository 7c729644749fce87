package domain

import "time"

// IdentityResource is an OIDC identity resource (a named group of user
// claims). Its name participates in the scope union offered to clients.
type IdentityResource struct {
	ID          int64
	Name        string
	DisplayName string
	Description string
	Enabled     bool
	UserClaims  []string
	Created     time.Time
}

// ApiResource represents a protected API and the scopes it exposes.
type ApiResource struct {
	ID          int64
	Name        string
	DisplayName string
	Description string
	Enabled     bool
	Scopes      []string
	UserClaims  []string
	Created     time.Time
}

// ApiScope is an individually requestable API scope. Its name participates in
// the scope union offered to clients.
type ApiScope struct {
	ID          int64
	Name        string
	DisplayName string
	Description string
	Enabled     bool
	Required    bool
	Emphasize   bool
	Created     time.Time
}
