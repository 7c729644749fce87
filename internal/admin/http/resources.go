package http

import (
	"encoding/json"
	"net/http"

	"github.com/idprov/clientadmin/internal/admin/service"
	"github.com/idprov/clientadmin/pkg/adminsdk"
	"github.com/idprov/clientadmin/pkg/httpx"
)

// ResourcesHandler handles identity resource, api resource and api scope
// endpoints.
type ResourcesHandler struct {
	ResourceService *service.ResourceService
}

// HandleQueryIdentityResources handles GET /api/configuration/identity-resources
//
//	@Summary		List Identity Resources
//	@Tags			Resources
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page	query		int		false	"1-based page number"
//	@Param			size	query		int		false	"page size (1-100)"
//	@Param			filter	query		string	false	"name substring filter"
//	@Success		200		{object}	adminsdk.IdentityResourcePage
//	@Failure		400		{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/identity-resources [get].
func (h *ResourcesHandler) HandleQueryIdentityResources(w http.ResponseWriter, r *http.Request) {
	pq, err := parsePageQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	page, err := h.ResourceService.QueryIdentityResourcePage(r.Context(), pq)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := adminsdk.IdentityResourcePage{
		Items:      make([]adminsdk.IdentityResourceDetails, 0, len(page.Items)),
		TotalCount: page.TotalCount,
	}
	for _, item := range page.Items {
		out.Items = append(out.Items, identityResourceToDTO(item))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGetIdentityResource handles GET /api/configuration/identity-resources/{id}
//
//	@Summary		Get Identity Resource
//	@Tags			Resources
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"resource id"
//	@Success		200	{object}	adminsdk.IdentityResourceDetails
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/identity-resources/{id} [get].
func (h *ResourcesHandler) HandleGetIdentityResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid resource id")
		return
	}

	res, err := h.ResourceService.GetIdentityResource(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, identityResourceToDTO(res))
}

// HandleSaveIdentityResource handles POST /api/configuration/identity-resources
//
//	@Summary		Save Identity Resource
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		adminsdk.IdentityResourceDetails	true	"resource record"
//	@Success		200		{object}	adminsdk.SaveResourceResponse
//	@Failure		400		{object}	adminsdk.ErrorResponse
//	@Failure		409		{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/identity-resources [post].
func (h *ResourcesHandler) HandleSaveIdentityResource(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.IdentityResourceDetails
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid JSON in request body")
		return
	}

	id, err := h.ResourceService.SaveIdentityResource(r.Context(), identityResourceFromDTO(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.SaveResourceResponse{ID: id})
}

// HandleQueryApiResources handles GET /api/configuration/api-resources
//
//	@Summary		List API Resources
//	@Tags			Resources
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	adminsdk.ApiResourcePage
//	@Router			/api/configuration/api-resources [get].
func (h *ResourcesHandler) HandleQueryApiResources(w http.ResponseWriter, r *http.Request) {
	pq, err := parsePageQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	page, err := h.ResourceService.QueryApiResourcePage(r.Context(), pq)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := adminsdk.ApiResourcePage{
		Items:      make([]adminsdk.ApiResourceDetails, 0, len(page.Items)),
		TotalCount: page.TotalCount,
	}
	for _, item := range page.Items {
		out.Items = append(out.Items, apiResourceToDTO(item))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGetApiResource handles GET /api/configuration/api-resources/{id}
//
//	@Summary		Get API Resource
//	@Tags			Resources
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"resource id"
//	@Success		200	{object}	adminsdk.ApiResourceDetails
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/api-resources/{id} [get].
func (h *ResourcesHandler) HandleGetApiResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid resource id")
		return
	}

	res, err := h.ResourceService.GetApiResource(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apiResourceToDTO(res))
}

// HandleSaveApiResource handles POST /api/configuration/api-resources
//
//	@Summary		Save API Resource
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		adminsdk.ApiResourceDetails	true	"resource record"
//	@Success		200		{object}	adminsdk.SaveResourceResponse
//	@Failure		409		{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/api-resources [post].
func (h *ResourcesHandler) HandleSaveApiResource(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.ApiResourceDetails
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid JSON in request body")
		return
	}

	id, err := h.ResourceService.SaveApiResource(r.Context(), apiResourceFromDTO(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.SaveResourceResponse{ID: id})
}

// HandleQueryApiScopes handles GET /api/configuration/api-scopes
//
//	@Summary		List API Scopes
//	@Tags			Resources
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	adminsdk.ApiScopePage
//	@Router			/api/configuration/api-scopes [get].
func (h *ResourcesHandler) HandleQueryApiScopes(w http.ResponseWriter, r *http.Request) {
	pq, err := parsePageQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	page, err := h.ResourceService.QueryApiScopePage(r.Context(), pq)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := adminsdk.ApiScopePage{
		Items:      make([]adminsdk.ApiScopeDetails, 0, len(page.Items)),
		TotalCount: page.TotalCount,
	}
	for _, item := range page.Items {
		out.Items = append(out.Items, apiScopeToDTO(item))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGetApiScope handles GET /api/configuration/api-scopes/{id}
//
//	@Summary		Get API Scope
//	@Tags			Resources
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"scope id"
//	@Success		200	{object}	adminsdk.ApiScopeDetails
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/api-scopes/{id} [get].
func (h *ResourcesHandler) HandleGetApiScope(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid scope id")
		return
	}

	res, err := h.ResourceService.GetApiScope(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apiScopeToDTO(res))
}

// HandleSaveApiScope handles POST /api/configuration/api-scopes
//
//	@Summary		Save API Scope
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		adminsdk.ApiScopeDetails	true	"scope record"
//	@Success		200		{object}	adminsdk.SaveResourceResponse
//	@Failure		409		{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/api-scopes [post].
func (h *ResourcesHandler) HandleSaveApiScope(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.ApiScopeDetails
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid JSON in request body")
		return
	}

	id, err := h.ResourceService.SaveApiScope(r.Context(), apiScopeFromDTO(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.SaveResourceResponse{ID: id})
}
