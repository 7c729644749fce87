package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/idprov/clientadmin/internal/admin/service"
	"github.com/idprov/clientadmin/internal/admin/store"
	"github.com/idprov/clientadmin/pkg/adminsdk"
	"github.com/idprov/clientadmin/pkg/httpx"
)

// ClientsHandler handles the client aggregate endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

func parsePageQuery(r *http.Request) (store.PageQuery, error) {
	q := store.PageQuery{Page: 1, Size: 10, Filter: r.URL.Query().Get("filter")}
	if raw := r.URL.Query().Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("%w: page must be an integer", service.ErrInvalidArgument)
		}
		q.Page = v
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("%w: size must be an integer", service.ErrInvalidArgument)
		}
		q.Size = v
	}
	return q, nil
}

// callerID resolves the authenticated administrator from the request context.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, adminsdk.ErrorCodeInvalidToken, "missing caller identity")
	}
	return id, ok
}

// HandleQuery handles GET /api/configuration/clients
//
//	@Summary		List Clients
//	@Description	Returns one page of the caller's clients, ordered by creation time ascending.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page	query		int	false	"1-based page number"
//	@Param			size	query		int	false	"page size (1-100)"
//	@Success		200		{object}	adminsdk.ClientPage
//	@Failure		400		{object}	adminsdk.ErrorResponse
//	@Failure		401		{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/clients [get].
func (h *ClientsHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerID(w, r)
	if !ok {
		return
	}

	pq, err := parsePageQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	page, err := h.ClientService.QueryClientPage(r.Context(), owner, pq)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := adminsdk.ClientPage{
		Clients:    make([]adminsdk.ClientSummary, 0, len(page.Items)),
		TotalCount: page.TotalCount,
	}
	for _, c := range page.Items {
		out.Clients = append(out.Clients, clientToSummary(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /api/configuration/clients/{id}
//
//	@Summary		Get Client
//	@Description	Returns the full client aggregate including all relation sets.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"client id"
//	@Success		200	{object}	adminsdk.ClientDetails
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid client id")
		return
	}

	c, err := h.ClientService.GetClientByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clientToDTO(c))
}

// HandleSave handles POST /api/configuration/clients
//
//	@Summary		Save Client
//	@Description	Creates a client (id omitted) or fully replaces an existing one (id set).
//	@Description	On create, classification defaults are applied and the external client id is generated.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		adminsdk.ClientDetails	true	"client aggregate"
//	@Success		200		{object}	adminsdk.SaveClientResponse
//	@Failure		400		{object}	adminsdk.ErrorResponse
//	@Failure		404		{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/clients [post].
func (h *ClientsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerID(w, r)
	if !ok {
		return
	}

	var req adminsdk.ClientDetails
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid JSON in request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "client name is required")
		return
	}

	id, err := h.ClientService.SaveClient(r.Context(), clientFromDTO(req), owner)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.SaveClientResponse{ID: id})
}

// HandleDelete handles DELETE /api/configuration/clients/{id}
//
//	@Summary		Delete Client
//	@Description	Deletes a client the caller owns, cascading its relation sets and secrets.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	int	true	"client id"
//	@Success		204
//	@Failure		403	{object}	adminsdk.ErrorResponse
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid client id")
		return
	}

	if err := h.ClientService.DeleteClient(r.Context(), id, owner); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListSecrets handles GET /api/configuration/clients/{id}/secrets
//
//	@Summary		List Client Secrets
//	@Description	Returns the stored secrets of a client, newest first. Values are the processed forms.
//	@Tags			Secrets
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"client id"
//	@Success		200	{array}		adminsdk.ClientSecretDetails
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/clients/{id}/secrets [get].
func (h *ClientsHandler) HandleListSecrets(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid client id")
		return
	}

	secrets, err := h.ClientService.ListSecrets(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]adminsdk.ClientSecretDetails, 0, len(secrets))
	for _, s := range secrets {
		out = append(out, secretToDTO(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAddSecret handles POST /api/configuration/client-secrets
//
//	@Summary		Add Client Secret
//	@Description	Stores a secret for a client. Shared secrets are digested per the requested algorithm before persistence.
//	@Tags			Secrets
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		adminsdk.AddSecretRequest	true	"secret record"
//	@Success		200		{object}	adminsdk.AddSecretResponse
//	@Failure		400		{object}	adminsdk.ErrorResponse
//	@Failure		404		{object}	adminsdk.ErrorResponse
//	@Router			/api/configuration/client-secrets [post].
func (h *ClientsHandler) HandleAddSecret(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.AddSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid JSON in request body")
		return
	}
	if req.ClientID <= 0 || req.Value == "" {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "client_id and value are required")
		return
	}

	id, err := h.ClientService.AddSecret(r.Context(), secretFromRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.AddSecretResponse{ID: id})
}

// HandleDeleteSecret handles DELETE /api/configuration/client-secrets/{id}
//
//	@Summary		Delete Client Secret
//	@Description	Deletes a secret by id. Deleting an absent secret succeeds.
//	@Tags			Secrets
//	@Security		BearerAuth
//	@Param			id	path	int	true	"secret id"
//	@Success		204
//	@Router			/api/configuration/client-secrets/{id} [delete].
func (h *ClientsHandler) HandleDeleteSecret(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "invalid secret id")
		return
	}

	if err := h.ClientService.DeleteSecret(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
