package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated administrator's numeric id.
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeyScopes carries the bearer token's permission scopes.
	CtxKeyScopes ctxKey = "scopes"
)

// UserIDFromContext returns the authenticated administrator id, or false when
// the request is unauthenticated.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(int64)
	return v, ok
}

func scopesFromCtx(ctx context.Context) ([]string, bool) {
	v, ok := ctx.Value(CtxKeyScopes).([]string)
	return v, ok
}
