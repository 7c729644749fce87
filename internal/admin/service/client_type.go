package service

import (
	"fmt"

	"github.com/idprov/clientadmin/internal/admin/domain"
)

// applyClientTypeDefaults stamps the default grant types and security flags
// for the client's classification onto c. Only invoked on the create path;
// a replace keeps whatever the caller supplies.
//
// Fields the table marks "unchanged" keep the caller-supplied values.
func applyClientTypeDefaults(c *domain.Client) error {
	switch c.ClientType {
	case domain.ClientTypeEmpty:
		// No defaults. The caller configures everything.
	case domain.ClientTypeWeb:
		c.AllowedGrantTypes = append(c.AllowedGrantTypes, domain.GrantTypeAuthorizationCode)
		c.RequirePkce = true
		c.RequireClientSecret = true
	case domain.ClientTypeSpa, domain.ClientTypeNative:
		c.AllowedGrantTypes = append(c.AllowedGrantTypes, domain.GrantTypeAuthorizationCode)
		c.RequirePkce = true
		c.RequireClientSecret = false
	case domain.ClientTypeMachine:
		c.AllowedGrantTypes = append(c.AllowedGrantTypes, domain.GrantTypeClientCredentials)
	case domain.ClientTypeDevice:
		c.AllowedGrantTypes = append(c.AllowedGrantTypes, domain.GrantTypeDeviceFlow)
		c.RequireClientSecret = false
		c.AllowOfflineAccess = true
	default:
		return fmt.Errorf("%w: unknown client type %d", ErrInvalidArgument, int(c.ClientType))
	}
	return nil
}
