package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const basePath = "/api/configuration"

// Client is a typed client for the admin API. The access token is supplied by
// the caller; the SDK does not run any token acquisition flow itself.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates an admin API client for the given base URL and bearer
// token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do performs a request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses are returned as an *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: ErrorCodeServerError}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func pageQuery(page, size int, filter string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if filter != "" {
		q.Set("filter", filter)
	}
	return "?" + q.Encode()
}

// Enums returns the static enumerations keyed by name.
func (c *Client) Enums(ctx context.Context) (map[string][]EnumItem, error) {
	var out map[string][]EnumItem
	err := c.do(ctx, http.MethodGet, basePath+"/enums", nil, &out)
	return out, err
}

// StandardClaims returns the OIDC standard claim names.
func (c *Client) StandardClaims(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, basePath+"/claims", nil, &out)
	return out, err
}

// GrantTypes returns the supported grant type wire values.
func (c *Client) GrantTypes(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, basePath+"/grant-types", nil, &out)
	return out, err
}

// Scopes returns the deduplicated union of identity resource and api scope
// names.
func (c *Client) Scopes(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, basePath+"/scopes", nil, &out)
	return out, err
}

// QueryClients returns one page of the caller's clients.
func (c *Client) QueryClients(ctx context.Context, page, size int) (ClientPage, error) {
	var out ClientPage
	err := c.do(ctx, http.MethodGet, basePath+"/clients"+pageQuery(page, size, ""), nil, &out)
	return out, err
}

// GetClient returns the full client aggregate.
func (c *Client) GetClient(ctx context.Context, id int64) (ClientDetails, error) {
	var out ClientDetails
	err := c.do(ctx, http.MethodGet, basePath+"/clients/"+strconv.FormatInt(id, 10), nil, &out)
	return out, err
}

// SaveClient creates (details.ID == 0) or fully replaces a client. Returns
// the client's id.
func (c *Client) SaveClient(ctx context.Context, details ClientDetails) (int64, error) {
	var out SaveClientResponse
	if err := c.do(ctx, http.MethodPost, basePath+"/clients", details, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// DeleteClient deletes a client the caller owns.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, basePath+"/clients/"+strconv.FormatInt(id, 10), nil, nil)
}

// ListClientSecrets returns the stored secrets of a client, newest first.
func (c *Client) ListClientSecrets(ctx context.Context, clientID int64) ([]ClientSecretDetails, error) {
	var out []ClientSecretDetails
	err := c.do(ctx, http.MethodGet, basePath+"/clients/"+strconv.FormatInt(clientID, 10)+"/secrets", nil, &out)
	return out, err
}

// AddClientSecret stores a new secret for a client, hashing shared secrets
// server-side per the requested algorithm.
func (c *Client) AddClientSecret(ctx context.Context, req AddSecretRequest) (int64, error) {
	var out AddSecretResponse
	if err := c.do(ctx, http.MethodPost, basePath+"/client-secrets", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// DeleteClientSecret deletes a secret by id. Deleting an absent secret
// succeeds.
func (c *Client) DeleteClientSecret(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, basePath+"/client-secrets/"+strconv.FormatInt(id, 10), nil, nil)
}

// QueryIdentityResources returns one page of identity resources, optionally
// filtered by name substring.
func (c *Client) QueryIdentityResources(ctx context.Context, page, size int, filter string) (IdentityResourcePage, error) {
	var out IdentityResourcePage
	err := c.do(ctx, http.MethodGet, basePath+"/identity-resources"+pageQuery(page, size, filter), nil, &out)
	return out, err
}

// GetIdentityResource returns a single identity resource.
func (c *Client) GetIdentityResource(ctx context.Context, id int64) (IdentityResourceDetails, error) {
	var out IdentityResourceDetails
	err := c.do(ctx, http.MethodGet, basePath+"/identity-resources/"+strconv.FormatInt(id, 10), nil, &out)
	return out, err
}

// SaveIdentityResource creates or updates an identity resource.
func (c *Client) SaveIdentityResource(ctx context.Context, details IdentityResourceDetails) (int64, error) {
	var out SaveResourceResponse
	if err := c.do(ctx, http.MethodPost, basePath+"/identity-resources", details, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// QueryApiResources returns one page of api resources.
func (c *Client) QueryApiResources(ctx context.Context, page, size int, filter string) (ApiResourcePage, error) {
	var out ApiResourcePage
	err := c.do(ctx, http.MethodGet, basePath+"/api-resources"+pageQuery(page, size, filter), nil, &out)
	return out, err
}

// GetApiResource returns a single api resource.
func (c *Client) GetApiResource(ctx context.Context, id int64) (ApiResourceDetails, error) {
	var out ApiResourceDetails
	err := c.do(ctx, http.MethodGet, basePath+"/api-resources/"+strconv.FormatInt(id, 10), nil, &out)
	return out, err
}

// SaveApiResource creates or updates an api resource.
func (c *Client) SaveApiResource(ctx context.Context, details ApiResourceDetails) (int64, error) {
	var out SaveResourceResponse
	if err := c.do(ctx, http.MethodPost, basePath+"/api-resources", details, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// QueryApiScopes returns one page of api scopes.
func (c *Client) QueryApiScopes(ctx context.Context, page, size int, filter string) (ApiScopePage, error) {
	var out ApiScopePage
	err := c.do(ctx, http.MethodGet, basePath+"/api-scopes"+pageQuery(page, size, filter), nil, &out)
	return out, err
}

// GetApiScope returns a single api scope.
func (c *Client) GetApiScope(ctx context.Context, id int64) (ApiScopeDetails, error) {
	var out ApiScopeDetails
	err := c.do(ctx, http.MethodGet, basePath+"/api-scopes/"+strconv.FormatInt(id, 10), nil, &out)
	return out, err
}

// SaveApiScope creates or updates an api scope.
func (c *Client) SaveApiScope(ctx context.Context, details ApiScopeDetails) (int64, error) {
	var out SaveResourceResponse
	if err := c.do(ctx, http.MethodPost, basePath+"/api-scopes", details, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Livez calls the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}

// Readyz calls the readiness probe.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}
