package http

import (
	"github.com/idprov/clientadmin/internal/admin/domain"
	"github.com/idprov/clientadmin/pkg/adminsdk"
)

func clientFromDTO(in adminsdk.ClientDetails) domain.Client {
	claims := make([]domain.ClientClaim, 0, len(in.Claims))
	for _, c := range in.Claims {
		claims = append(claims, domain.ClientClaim{Type: c.Type, Value: c.Value})
	}
	return domain.Client{
		ID:         in.ID,
		ClientID:   in.ClientID,
		ClientType: domain.ClientType(in.ClientType),

		Name:        in.Name,
		Description: in.Description,
		ClientURI:   in.ClientURI,
		LogoURI:     in.LogoURI,

		RequirePkce:         in.RequirePkce,
		RequireClientSecret: in.RequireClientSecret,
		AllowOfflineAccess:  in.AllowOfflineAccess,

		AccessTokenLifetime:   in.AccessTokenLifetime,
		IdentityTokenLifetime: in.IdentityTokenLifetime,

		AllowedGrantTypes:            in.AllowedGrantTypes,
		RedirectURIs:                 in.RedirectURIs,
		PostLogoutRedirectURIs:       in.PostLogoutRedirectURIs,
		AllowedScopes:                in.AllowedScopes,
		IdentityProviderRestrictions: in.IdentityProviderRestrictions,
		Claims:                       claims,
		AllowedCorsOrigins:           in.AllowedCorsOrigins,
	}
}

func clientToDTO(in domain.Client) adminsdk.ClientDetails {
	claims := make([]adminsdk.ClientClaim, 0, len(in.Claims))
	for _, c := range in.Claims {
		claims = append(claims, adminsdk.ClientClaim{Type: c.Type, Value: c.Value})
	}
	return adminsdk.ClientDetails{
		ID:         in.ID,
		ClientID:   in.ClientID,
		ClientType: int(in.ClientType),

		Name:        in.Name,
		Description: in.Description,
		ClientURI:   in.ClientURI,
		LogoURI:     in.LogoURI,

		RequirePkce:         in.RequirePkce,
		RequireClientSecret: in.RequireClientSecret,
		AllowOfflineAccess:  in.AllowOfflineAccess,

		AccessTokenLifetime:   in.AccessTokenLifetime,
		IdentityTokenLifetime: in.IdentityTokenLifetime,

		AllowedGrantTypes:            in.AllowedGrantTypes,
		RedirectURIs:                 in.RedirectURIs,
		PostLogoutRedirectURIs:       in.PostLogoutRedirectURIs,
		AllowedScopes:                in.AllowedScopes,
		IdentityProviderRestrictions: in.IdentityProviderRestrictions,
		Claims:                       claims,
		AllowedCorsOrigins:           in.AllowedCorsOrigins,

		Created: in.Created,
		Updated: in.Updated,
	}
}

func clientToSummary(in domain.Client) adminsdk.ClientSummary {
	return adminsdk.ClientSummary{
		ID:         in.ID,
		ClientID:   in.ClientID,
		ClientType: int(in.ClientType),
		Name:       in.Name,
		Created:    in.Created,
	}
}

func secretFromRequest(in adminsdk.AddSecretRequest) domain.ClientSecret {
	return domain.ClientSecret{
		ClientID:    in.ClientID,
		Type:        in.Type,
		HashType:    domain.HashType(in.HashType),
		Value:       in.Value,
		Description: in.Description,
		Expiration:  in.Expiration,
	}
}

func secretToDTO(in domain.ClientSecret) adminsdk.ClientSecretDetails {
	return adminsdk.ClientSecretDetails{
		ID:          in.ID,
		Type:        in.Type,
		Value:       in.Value,
		Description: in.Description,
		Expiration:  in.Expiration,
		Created:     in.Created,
	}
}

func identityResourceFromDTO(in adminsdk.IdentityResourceDetails) domain.IdentityResource {
	return domain.IdentityResource{
		ID:          in.ID,
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Enabled:     in.Enabled,
		UserClaims:  in.UserClaims,
	}
}

func identityResourceToDTO(in domain.IdentityResource) adminsdk.IdentityResourceDetails {
	return adminsdk.IdentityResourceDetails{
		ID:          in.ID,
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Enabled:     in.Enabled,
		UserClaims:  in.UserClaims,
		Created:     in.Created,
	}
}

func apiResourceFromDTO(in adminsdk.ApiResourceDetails) domain.ApiResource {
	return domain.ApiResource{
		ID:          in.ID,
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Enabled:     in.Enabled,
		Scopes:      in.Scopes,
		UserClaims:  in.UserClaims,
	}
}

func apiResourceToDTO(in domain.ApiResource) adminsdk.ApiResourceDetails {
	return adminsdk.ApiResourceDetails{
		ID:          in.ID,
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Enabled:     in.Enabled,
		Scopes:      in.Scopes,
		UserClaims:  in.UserClaims,
		Created:     in.Created,
	}
}

func apiScopeFromDTO(in adminsdk.ApiScopeDetails) domain.ApiScope {
	return domain.ApiScope{
		ID:          in.ID,
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Enabled:     in.Enabled,
		Required:    in.Required,
		Emphasize:   in.Emphasize,
	}
}

func apiScopeToDTO(in domain.ApiScope) adminsdk.ApiScopeDetails {
	return adminsdk.ApiScopeDetails{
		ID:          in.ID,
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Enabled:     in.Enabled,
		Required:    in.Required,
		Emphasize:   in.Emphasize,
		Created:     in.Created,
	}
}
