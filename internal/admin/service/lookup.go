package service

import (
	"github.com/idprov/clientadmin/internal/admin/domain"
)

// SelectItem is one choice in a UI picker: the wire value plus its label.
type SelectItem struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// LookupService serves the static enumerations, standard claim names and
// grant type names the admin UI needs to render its forms. Everything here
// is immutable; callers always receive fresh copies.
type LookupService struct{}

var clientTypeItems = []SelectItem{
	{Value: int(domain.ClientTypeEmpty), Label: "Empty"},
	{Value: int(domain.ClientTypeWeb), Label: "Web Application"},
	{Value: int(domain.ClientTypeSpa), Label: "Single Page Application"},
	{Value: int(domain.ClientTypeNative), Label: "Native Application"},
	{Value: int(domain.ClientTypeMachine), Label: "Machine"},
	{Value: int(domain.ClientTypeDevice), Label: "Device"},
}

var hashTypeItems = []SelectItem{
	{Value: int(domain.HashTypeNone), Label: "None"},
	{Value: int(domain.HashTypeSha256), Label: "SHA-256"},
	{Value: int(domain.HashTypeSha512), Label: "SHA-512"},
}

var accessTokenTypeItems = []SelectItem{
	{Value: int(domain.AccessTokenTypeJwt), Label: "JWT"},
	{Value: int(domain.AccessTokenTypeReference), Label: "Reference"},
}

var tokenUsageItems = []SelectItem{
	{Value: int(domain.TokenUsageReuse), Label: "ReUse"},
	{Value: int(domain.TokenUsageOneTimeOnly), Label: "OneTimeOnly"},
}

var tokenExpirationItems = []SelectItem{
	{Value: int(domain.TokenExpirationSliding), Label: "Sliding"},
	{Value: int(domain.TokenExpirationAbsolute), Label: "Absolute"},
}

// standardClaims are the OIDC standard claim names offered when configuring
// client claims and resource user claims.
var standardClaims = []string{
	"sub", "name", "given_name", "family_name", "middle_name", "nickname",
	"preferred_username", "profile", "picture", "website", "email",
	"email_verified", "gender", "birthdate", "zoneinfo", "locale",
	"phone_number", "phone_number_verified", "address", "updated_at",
}

var grantTypeNames = []string{
	domain.GrantTypeAuthorizationCode,
	domain.GrantTypeClientCredentials,
	domain.GrantTypeImplicit,
	domain.GrantTypeHybrid,
	domain.GrantTypePassword,
	domain.GrantTypeDeviceFlow,
}

// Enums returns every static enumeration keyed by name.
func (s *LookupService) Enums() map[string][]SelectItem {
	return map[string][]SelectItem{
		"clientType":      append([]SelectItem(nil), clientTypeItems...),
		"hashType":        append([]SelectItem(nil), hashTypeItems...),
		"accessTokenType": append([]SelectItem(nil), accessTokenTypeItems...),
		"tokenUsage":      append([]SelectItem(nil), tokenUsageItems...),
		"tokenExpiration": append([]SelectItem(nil), tokenExpirationItems...),
	}
}

// StandardClaims returns the OIDC standard claim names.
func (s *LookupService) StandardClaims() []string {
	return append([]string(nil), standardClaims...)
}

// GrantTypeNames returns the supported grant type wire values.
func (s *LookupService) GrantTypeNames() []string {
	return append([]string(nil), grantTypeNames...)
}
