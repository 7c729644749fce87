package adminsdk

import "time"

// ErrorResponse is the JSON error envelope returned by every admin endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// EnumItem is one choice of a static enumeration.
type EnumItem struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// ClientClaim is a claim the server includes in tokens issued to a client.
type ClientClaim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ClientDetails is the full client aggregate as accepted and returned by the
// save/get endpoints. On save, ID == 0 creates a new client and any other
// value replaces the existing aggregate wholesale. ClientID and Created are
// server-assigned and ignored on input.
type ClientDetails struct {
	ID         int64  `json:"id,omitempty"`
	ClientID   string `json:"client_id,omitempty"`
	ClientType int    `json:"client_type"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ClientURI   string `json:"client_uri,omitempty"`
	LogoURI     string `json:"logo_uri,omitempty"`

	RequirePkce         bool `json:"require_pkce"`
	RequireClientSecret bool `json:"require_client_secret"`
	AllowOfflineAccess  bool `json:"allow_offline_access"`

	AccessTokenLifetime   int `json:"access_token_lifetime,omitempty"`
	IdentityTokenLifetime int `json:"identity_token_lifetime,omitempty"`

	AllowedGrantTypes            []string      `json:"allowed_grant_types,omitempty"`
	RedirectURIs                 []string      `json:"redirect_uris,omitempty"`
	PostLogoutRedirectURIs       []string      `json:"post_logout_redirect_uris,omitempty"`
	AllowedScopes                []string      `json:"allowed_scopes,omitempty"`
	IdentityProviderRestrictions []string      `json:"identity_provider_restrictions,omitempty"`
	Claims                       []ClientClaim `json:"claims,omitempty"`
	AllowedCorsOrigins           []string      `json:"allowed_cors_origins,omitempty"`

	Created time.Time  `json:"created,omitempty"`
	Updated *time.Time `json:"updated,omitempty"`
}

// ClientSummary is the trimmed client representation used in page listings.
type ClientSummary struct {
	ID         int64     `json:"id"`
	ClientID   string    `json:"client_id"`
	ClientType int       `json:"client_type"`
	Name       string    `json:"name"`
	Created    time.Time `json:"created"`
}

// ClientPage is one page of a client listing plus the total row count.
type ClientPage struct {
	Clients    []ClientSummary `json:"clients"`
	TotalCount int64           `json:"total_count"`
}

// SaveClientResponse carries the id of the created or replaced client.
type SaveClientResponse struct {
	ID int64 `json:"id"`
}

// AddSecretRequest creates a secret for a client. HashType selects the digest
// applied to shared secrets before storage: 0 none, 1 SHA-256, 2 SHA-512.
type AddSecretRequest struct {
	ClientID    int64      `json:"client_id"`
	Type        string     `json:"type"`
	HashType    int        `json:"hash_type"`
	Value       string     `json:"value"`
	Description string     `json:"description,omitempty"`
	Expiration  *time.Time `json:"expiration,omitempty"`
}

// ClientSecretDetails is a stored secret record. Value is the processed
// (hashed or verbatim) form; the raw input is never recoverable.
type ClientSecretDetails struct {
	ID          int64      `json:"id"`
	Type        string     `json:"type"`
	Value       string     `json:"value"`
	Description string     `json:"description,omitempty"`
	Expiration  *time.Time `json:"expiration,omitempty"`
	Created     time.Time  `json:"created"`
}

// AddSecretResponse carries the id of the stored secret.
type AddSecretResponse struct {
	ID int64 `json:"id"`
}

// IdentityResourceDetails is an OIDC identity resource record.
type IdentityResourceDetails struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Enabled     bool      `json:"enabled"`
	UserClaims  []string  `json:"user_claims,omitempty"`
	Created     time.Time `json:"created,omitempty"`
}

// IdentityResourcePage is one page of identity resources.
type IdentityResourcePage struct {
	Items      []IdentityResourceDetails `json:"items"`
	TotalCount int64                     `json:"total_count"`
}

// ApiResourceDetails is a protected API record.
type ApiResourceDetails struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Enabled     bool      `json:"enabled"`
	Scopes      []string  `json:"scopes,omitempty"`
	UserClaims  []string  `json:"user_claims,omitempty"`
	Created     time.Time `json:"created,omitempty"`
}

// ApiResourcePage is one page of api resources.
type ApiResourcePage struct {
	Items      []ApiResourceDetails `json:"items"`
	TotalCount int64                `json:"total_count"`
}

// ApiScopeDetails is an individually requestable API scope record.
type ApiScopeDetails struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Enabled     bool      `json:"enabled"`
	Required    bool      `json:"required"`
	Emphasize   bool      `json:"emphasize"`
	Created     time.Time `json:"created,omitempty"`
}

// ApiScopePage is one page of api scopes.
type ApiScopePage struct {
	Items      []ApiScopeDetails `json:"items"`
	TotalCount int64             `json:"total_count"`
}

// SaveResourceResponse carries the id of the saved resource record.
type SaveResourceResponse struct {
	ID int64 `json:"id"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
