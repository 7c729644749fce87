package http

import (
	"net/http"

	"github.com/idprov/clientadmin/internal/admin/service"
	"github.com/idprov/clientadmin/pkg/adminsdk"
	"github.com/idprov/clientadmin/pkg/httpx"
)

// LookupHandler serves the static enumerations and name lists used by admin
// UI pickers.
type LookupHandler struct {
	LookupService *service.LookupService
	ClientService *service.ClientService
}

// HandleEnums handles GET /api/configuration/enums
//
//	@Summary		List Enumerations
//	@Description	Returns every static enumeration keyed by name.
//	@Tags			Lookup
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	map[string][]adminsdk.EnumItem
//	@Router			/api/configuration/enums [get].
func (h *LookupHandler) HandleEnums(w http.ResponseWriter, r *http.Request) {
	enums := h.LookupService.Enums()
	out := make(map[string][]adminsdk.EnumItem, len(enums))
	for name, items := range enums {
		dto := make([]adminsdk.EnumItem, 0, len(items))
		for _, item := range items {
			dto = append(dto, adminsdk.EnumItem{Value: item.Value, Label: item.Label})
		}
		out[name] = dto
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleClaims handles GET /api/configuration/claims
//
//	@Summary		List Standard Claims
//	@Tags			Lookup
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	string
//	@Router			/api/configuration/claims [get].
func (h *LookupHandler) HandleClaims(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.LookupService.StandardClaims())
}

// HandleGrantTypes handles GET /api/configuration/grant-types
//
//	@Summary		List Grant Types
//	@Tags			Lookup
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	string
//	@Router			/api/configuration/grant-types [get].
func (h *LookupHandler) HandleGrantTypes(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.LookupService.GrantTypeNames())
}

// HandleScopes handles GET /api/configuration/scopes
//
//	@Summary		List Scopes
//	@Description	Returns the deduplicated union of identity resource names and api scope names.
//	@Tags			Lookup
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	string
//	@Router			/api/configuration/scopes [get].
func (h *LookupHandler) HandleScopes(w http.ResponseWriter, r *http.Request) {
	scopes, err := h.ClientService.ListScopes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, scopes)
}
