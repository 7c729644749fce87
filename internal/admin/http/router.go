package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/idprov/clientadmin/internal/admin/service"
	"github.com/idprov/clientadmin/internal/admin/store"
	"github.com/idprov/clientadmin/pkg/httpx"
	"github.com/idprov/clientadmin/pkg/jwtx"
	"github.com/idprov/clientadmin/pkg/slogx"

	_ "github.com/idprov/clientadmin/api/admin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Scopes required by the configuration endpoints.
const (
	ScopeConfigurationRead  = "configuration:read"
	ScopeConfigurationWrite = "configuration:write"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	ClientService   *service.ClientService
	ResourceService *service.ResourceService
	LookupService   *service.LookupService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerLookup()
	r.registerResources()
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Client Configuration Admin API
//	@version		0.1.0
//	@description	Administration API for OAuth2/OIDC client configuration: client aggregates
//	@description	with their relation sets, secrets, ownership, and protected resources.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// read wraps a handler with the read-path middleware: authn, read scope and
// the lenient rate limit.
func (r *Router) read(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(ScopeConfigurationRead, ScopeConfigurationWrite),
		httpx.RateLimitByUser(httpx.ReadLimit),
	)
}

// write wraps a handler with the mutation-path middleware: authn, write
// scope and the strict rate limit.
func (r *Router) write(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(ScopeConfigurationWrite),
		httpx.RateLimitByUser(httpx.WriteLimit),
	)
}

func (r *Router) registerLookup() {
	h := &LookupHandler{
		LookupService: r.LookupService,
		ClientService: r.ClientService,
	}

	r.Mux.Handle("GET /api/configuration/enums", r.read(h.HandleEnums))
	r.Mux.Handle("GET /api/configuration/claims", r.read(h.HandleClaims))
	r.Mux.Handle("GET /api/configuration/grant-types", r.read(h.HandleGrantTypes))
	r.Mux.Handle("GET /api/configuration/scopes", r.read(h.HandleScopes))
}

func (r *Router) registerResources() {
	h := &ResourcesHandler{ResourceService: r.ResourceService}

	r.Mux.Handle("GET /api/configuration/identity-resources", r.read(h.HandleQueryIdentityResources))
	r.Mux.Handle("GET /api/configuration/identity-resources/{id}", r.read(h.HandleGetIdentityResource))
	r.Mux.Handle("POST /api/configuration/identity-resources", r.write(h.HandleSaveIdentityResource))

	r.Mux.Handle("GET /api/configuration/api-resources", r.read(h.HandleQueryApiResources))
	r.Mux.Handle("GET /api/configuration/api-resources/{id}", r.read(h.HandleGetApiResource))
	r.Mux.Handle("POST /api/configuration/api-resources", r.write(h.HandleSaveApiResource))

	r.Mux.Handle("GET /api/configuration/api-scopes", r.read(h.HandleQueryApiScopes))
	r.Mux.Handle("GET /api/configuration/api-scopes/{id}", r.read(h.HandleGetApiScope))
	r.Mux.Handle("POST /api/configuration/api-scopes", r.write(h.HandleSaveApiScope))
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	r.Mux.Handle("GET /api/configuration/clients", r.read(h.HandleQuery))
	r.Mux.Handle("GET /api/configuration/clients/{id}", r.read(h.HandleGet))
	r.Mux.Handle("POST /api/configuration/clients", r.write(h.HandleSave))
	r.Mux.Handle("DELETE /api/configuration/clients/{id}", r.write(h.HandleDelete))

	r.Mux.Handle("GET /api/configuration/clients/{id}/secrets", r.read(h.HandleListSecrets))
	r.Mux.Handle("POST /api/configuration/client-secrets", r.write(h.HandleAddSecret))
	r.Mux.Handle("DELETE /api/configuration/client-secrets/{id}", r.write(h.HandleDeleteSecret))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
