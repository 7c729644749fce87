package domain

import "time"

// ClientType classifies a client registration. The classification is only
// consulted at creation time, where it selects the default grant types and
// security flags for the new client.
type ClientType int

const (
	ClientTypeEmpty ClientType = iota
	ClientTypeWeb
	ClientTypeSpa
	ClientTypeNative
	ClientTypeMachine
	ClientTypeDevice
)

func (t ClientType) String() string {
	switch t {
	case ClientTypeEmpty:
		return "empty"
	case ClientTypeWeb:
		return "web"
	case ClientTypeSpa:
		return "spa"
	case ClientTypeNative:
		return "native"
	case ClientTypeMachine:
		return "machine"
	case ClientTypeDevice:
		return "device"
	default:
		return "unknown"
	}
}

// Grant type wire values. Kept compatible with the usual OAuth2/OIDC names.
const (
	GrantTypeAuthorizationCode = "authorization_code"
	GrantTypeClientCredentials = "client_credentials"
	GrantTypeImplicit          = "implicit"
	GrantTypeHybrid            = "hybrid"
	GrantTypePassword          = "password"
	GrantTypeDeviceFlow        = "urn:ietf:params:oauth:grant-type:device_code"
)

// ClientClaim is a claim the server includes in tokens issued to a client.
type ClientClaim struct {
	Type  string
	Value string
}

// Client is the aggregate root for a registered OAuth2/OIDC client and all of
// its dependent configuration. ID is the internal numeric identity owned by
// the store; ClientID is the external identifier generated once at creation.
// The seven multi-valued collections are replaced wholesale on every full
// update and cascade-deleted with the client.
type Client struct {
	ID         int64
	ClientID   string
	ClientType ClientType

	Name        string
	Description string
	ClientURI   string
	LogoURI     string

	RequirePkce         bool
	RequireClientSecret bool
	AllowOfflineAccess  bool

	AccessTokenLifetime   int
	IdentityTokenLifetime int

	AllowedGrantTypes            []string
	RedirectURIs                 []string
	PostLogoutRedirectURIs       []string
	AllowedScopes                []string
	IdentityProviderRestrictions []string
	Claims                       []ClientClaim
	AllowedCorsOrigins           []string

	Created time.Time
	Updated *time.Time
}

// ClientOwner maps a client to the single administrator allowed to modify or
// delete it. Exactly one row exists per client, written in the same atomic
// unit that creates the client.
type ClientOwner struct {
	ClientID int64
	UserID   int64
}
