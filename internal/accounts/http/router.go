package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/i18n"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"

	_ "github.com/aussiebroadwan/accounts/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	catalog      *i18n.Catalog
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	catalog *i18n.Catalog,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		catalog:      catalog,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recoverer(func(req *http.Request) any {
			return authsdk.MessageResponse{Msg: catalog.Localize(req, i18n.InternalError)}
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerWellKnown()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accounts Service API
//	@version		0.1.0
//	@description	Account registration and sign in. A token is issued once at signup and returned on every successful signin.
//	@description
//	@description				Tokens are signed JWS (EdDSA by default) and can be verified with the JWKS endpoint.
//	@description				Messages are localized from Accept-Language or the lang query parameter (en, zh-Hans).
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/accounts
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Account token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{
		AccountService: r.AccountService,
		Catalog:        r.catalog,
	}

	r.Mux.Handle("POST /v1/accounts/signup", http.HandlerFunc(h.HandleSignup))
	r.Mux.Handle("POST /v1/accounts/signin", http.HandlerFunc(h.HandleSignin))

	r.Mux.Handle("GET /v1/accounts/me",
		httpx.Chain(MeHandler(r.catalog),
			httpx.AuthnMiddleware(r.verifier, unauthorizedBody(r.catalog)),
		),
	)
}

func (r *Router) registerWellKnown() {
	r.Mux.Handle("GET /.well-known/jwks.json", JWKSHandler(r.keys))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
}
