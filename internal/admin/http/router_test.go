package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/idprov/clientadmin/internal/admin/service"
	"github.com/idprov/clientadmin/internal/admin/store/drivers/sqlite"
	"github.com/idprov/clientadmin/pkg/adminsdk"
	"github.com/idprov/clientadmin/pkg/jwtx"
	"github.com/idprov/clientadmin/pkg/slogx"
)

var testKey = []byte("test-hmac-key-for-router-tests!!")

const (
	testIssuer   = "https://idp.test"
	testAudience = "clientadmin"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	verifier := jwtx.NewVerifierHS256(testKey, testIssuer, []string{testAudience})
	logger := slogx.New(slogx.Config{Level: "error", Format: "text"})

	r := NewRouter(verifier, "test", st, logger)
	r.ClientService = &service.ClientService{Store: st}
	r.ResourceService = &service.ResourceService{Store: st}
	r.LookupService = &service.LookupService{}
	r.ApplyRoutes()
	return r
}

func mintToken(t *testing.T, subject int64, scopes ...string) string {
	t.Helper()

	claims := jwtx.NewClaims(
		strconv.FormatInt(subject, 10), scopes,
		testIssuer, []string{testAudience},
		time.Hour, time.Now(),
	)
	token, err := jwtx.SignHS256(testKey, claims)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *Router, method, path, token string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func TestAuthenticationRequired(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/configuration/clients?page=1&size=10", "", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
}

func TestScopeEnforcement(t *testing.T) {
	r := newTestRouter(t)

	t.Run("read scope cannot mutate", func(t *testing.T) {
		token := mintToken(t, 1, ScopeConfigurationRead)
		rec := doJSON(t, r, http.MethodPost, "/api/configuration/clients", token,
			adminsdk.ClientDetails{Name: "nope"}, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("write scope implies read", func(t *testing.T) {
		token := mintToken(t, 1, ScopeConfigurationWrite)
		rec := doJSON(t, r, http.MethodGet, "/api/configuration/enums", token, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/configuration/enums", "not-a-jwt", nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestClientLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	owner := mintToken(t, 7, ScopeConfigurationRead, ScopeConfigurationWrite)

	var saved adminsdk.SaveClientResponse
	rec := doJSON(t, r, http.MethodPost, "/api/configuration/clients", owner, adminsdk.ClientDetails{
		ClientType:   1, // web
		Name:         "portal",
		RedirectURIs: []string{"https://portal.example/cb"},
	}, &saved)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotZero(t, saved.ID)

	t.Run("get returns the aggregate with defaults applied", func(t *testing.T) {
		var got adminsdk.ClientDetails
		rec := doJSON(t, r, http.MethodGet, "/api/configuration/clients/"+strconv.FormatInt(saved.ID, 10), owner, nil, &got)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "portal", got.Name)
		require.True(t, got.RequirePkce)
		require.True(t, got.RequireClientSecret)
		require.Equal(t, []string{"authorization_code"}, got.AllowedGrantTypes)
		require.NotEmpty(t, got.ClientID)
	})

	t.Run("page listing is owner scoped", func(t *testing.T) {
		other := mintToken(t, 8, ScopeConfigurationRead)
		var page adminsdk.ClientPage
		rec := doJSON(t, r, http.MethodGet, "/api/configuration/clients?page=1&size=10", other, nil, &page)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Zero(t, page.TotalCount)
		require.Empty(t, page.Clients)
	})

	t.Run("invalid pagination is a bad request", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/configuration/clients?page=0&size=10", owner, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, r, http.MethodGet, "/api/configuration/clients?page=abc&size=10", owner, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, r, http.MethodGet, "/api/configuration/clients?page=1&size=ten", owner, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		other := mintToken(t, 8, ScopeConfigurationWrite)
		rec := doJSON(t, r, http.MethodDelete, "/api/configuration/clients/"+strconv.FormatInt(saved.ID, 10), other, nil, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("owner deletes", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodDelete, "/api/configuration/clients/"+strconv.FormatInt(saved.ID, 10), owner, nil, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, r, http.MethodGet, "/api/configuration/clients/"+strconv.FormatInt(saved.ID, 10), owner, nil, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSecretsOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := mintToken(t, 3, ScopeConfigurationRead, ScopeConfigurationWrite)

	var saved adminsdk.SaveClientResponse
	rec := doJSON(t, r, http.MethodPost, "/api/configuration/clients", token, adminsdk.ClientDetails{
		ClientType: 4, // machine
		Name:       "worker",
	}, &saved)
	require.Equal(t, http.StatusOK, rec.Code)

	var added adminsdk.AddSecretResponse
	rec = doJSON(t, r, http.MethodPost, "/api/configuration/client-secrets", token, adminsdk.AddSecretRequest{
		ClientID: saved.ID,
		Type:     "SharedSecret",
		HashType: 1, // sha256
		Value:    "topsecret",
	}, &added)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotZero(t, added.ID)

	t.Run("stored value is the digest", func(t *testing.T) {
		var secrets []adminsdk.ClientSecretDetails
		rec := doJSON(t, r, http.MethodGet, "/api/configuration/clients/"+strconv.FormatInt(saved.ID, 10)+"/secrets", token, nil, &secrets)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, secrets, 1)
		require.NotEqual(t, "topsecret", secrets[0].Value)
	})

	t.Run("secret for unknown client is not found", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/configuration/client-secrets", token, adminsdk.AddSecretRequest{
			ClientID: 9999,
			Type:     "SharedSecret",
			Value:    "whatever",
		}, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deleting an absent secret is a no-op", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodDelete, "/api/configuration/client-secrets/99", token, nil, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLookupAndHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := mintToken(t, 1, ScopeConfigurationRead)

	t.Run("enums", func(t *testing.T) {
		var enums map[string][]adminsdk.EnumItem
		rec := doJSON(t, r, http.MethodGet, "/api/configuration/enums", token, nil, &enums)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, enums["clientType"], 6)
	})

	t.Run("grant types", func(t *testing.T) {
		var names []string
		rec := doJSON(t, r, http.MethodGet, "/api/configuration/grant-types", token, nil, &names)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, names, "authorization_code")
		require.Contains(t, names, "client_credentials")
	})

	t.Run("scopes union", func(t *testing.T) {
		writeToken := mintToken(t, 1, ScopeConfigurationWrite)
		rec := doJSON(t, r, http.MethodPost, "/api/configuration/identity-resources", writeToken,
			adminsdk.IdentityResourceDetails{Name: "openid", Enabled: true}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		rec = doJSON(t, r, http.MethodPost, "/api/configuration/api-scopes", writeToken,
			adminsdk.ApiScopeDetails{Name: "billing.read", Enabled: true}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var scopes []string
		rec = doJSON(t, r, http.MethodGet, "/api/configuration/scopes", token, nil, &scopes)
		require.Equal(t, http.StatusOK, rec.Code)
		require.ElementsMatch(t, []string{"openid", "billing.read"}, scopes)
	})

	t.Run("health probes are public", func(t *testing.T) {
		var health adminsdk.HealthResponse
		rec := doJSON(t, r, http.MethodGet, "/livez", "", nil, &health)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ok", health.Status)

		rec = doJSON(t, r, http.MethodGet, "/readyz", "", nil, &health)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ok", health.Checks.Database)
	})
}

func TestTypedClientRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	sdk := adminsdk.NewClient(srv.URL, mintToken(t, 3, ScopeConfigurationWrite))
	ctx := context.Background()

	id, err := sdk.SaveClient(ctx, adminsdk.ClientDetails{
		Name:       "reporting dashboard",
		ClientType: 1,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := sdk.GetClient(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "reporting dashboard", got.Name)
	require.Contains(t, got.AllowedGrantTypes, "authorization_code")

	secretID, err := sdk.AddClientSecret(ctx, adminsdk.AddSecretRequest{
		ClientID: id,
		Type:     "SharedSecret",
		HashType: 1,
		Value:    "hunter2",
	})
	require.NoError(t, err)
	require.Positive(t, secretID)

	secrets, err := sdk.ListClientSecrets(ctx, id)
	require.NoError(t, err)
	require.Len(t, secrets, 1)
	require.NotEqual(t, "hunter2", secrets[0].Value)

	page, err := sdk.QueryClients(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalCount)

	require.NoError(t, sdk.DeleteClient(ctx, id))

	_, err = sdk.GetClient(ctx, id)
	var apiErr *adminsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.IsNotFound())
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	health, err := sdk.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}
