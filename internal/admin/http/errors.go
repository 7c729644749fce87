package http

import (
	"errors"
	"net/http"

	"github.com/idprov/clientadmin/internal/admin/service"
	"github.com/idprov/clientadmin/pkg/adminsdk"
	"github.com/idprov/clientadmin/pkg/httpx"
	"github.com/idprov/clientadmin/pkg/slogx"
)

// writeServiceError maps service errors onto HTTP status codes and the JSON
// error envelope. Unrecognized errors are persistence failures and surface
// as 500 without leaking detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		httpx.WriteError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, adminsdk.ErrorCodeNotFound, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		httpx.WriteError(w, http.StatusForbidden, adminsdk.ErrorCodeAccessDenied, err.Error())
	case errors.Is(err, service.ErrConflict):
		httpx.WriteError(w, http.StatusConflict, adminsdk.ErrorCodeConflict, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err, "path", r.URL.Path)
		httpx.WriteError(w, http.StatusInternalServerError, adminsdk.ErrorCodeServerError, "internal error")
	}
}
