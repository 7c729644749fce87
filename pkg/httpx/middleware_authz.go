package httpx

import (
	"net/http"
)

// RequireAnyScope authorizes a request when the caller holds at least one of
// the listed scopes. Attach after AuthnMiddleware; without a verified token
// in the context every request is rejected.
func RequireAnyScope(scopes ...string) Middleware {
	want := make(map[string]struct{}, len(scopes))
	for _, s := range scopes {
		want[s] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			held, ok := scopesFromCtx(r.Context())
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}
			for _, s := range held {
				if _, hit := want[s]; hit {
					next.ServeHTTP(w, r)
					return
				}
			}
			w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope"`)
			WriteError(w, http.StatusForbidden, "insufficient_scope", "caller lacks a required scope")
		})
	}
}
