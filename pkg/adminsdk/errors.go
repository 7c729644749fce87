package adminsdk

import "fmt"

// Error codes written by the admin API.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeAccessDenied      = "access_denied"
	ErrorCodeConflict          = "conflict"
	ErrorCodeServerError       = "server_error"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
)

// APIError is a structured failure returned by the admin API. It implements
// the error interface so SDK callers can inspect it via errors.As.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("admin api: %s (status %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("admin api: %s: %s (status %d)", e.Code, e.Description, e.StatusCode)
}

// IsNotFound reports whether the error is a 404 from the API.
func (e *APIError) IsNotFound() bool { return e.Code == ErrorCodeNotFound }

// IsAccessDenied reports whether the caller lacked ownership or scope.
func (e *APIError) IsAccessDenied() bool {
	return e.Code == ErrorCodeAccessDenied || e.Code == ErrorCodeInsufficientScope
}
