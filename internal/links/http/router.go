package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/links/internal/links/service"
	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/aussiebroadwan/links/pkg/httpx"
	"github.com/aussiebroadwan/links/pkg/slogx"

	_ "github.com/aussiebroadwan/links/api/links" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Realm is sent in the Basic auth challenge.
const Realm = "links"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	RedirectService *service.RedirectService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ApplyRoutes registers every endpoint. Service endpoints live under /_/
// so they never collide with user paths.
func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerRedirects()

	r.Mux.Handle("GET /_/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/_/swagger/doc.json"),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Links Redirection Service API
//	@version		0.1.0
//	@description	Personal short-link service. Authenticated users register path to URL
//	@description	redirects; anyone can follow them.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/links
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.basic	BasicAuth
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerRedirects() {
	h := &RedirectsHandler{RedirectService: r.RedirectService}
	authn := httpx.BasicAuth(r.AuthService, Realm)

	r.Mux.Handle("GET /{$}", httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("POST /{$}", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("DELETE /{path...}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))

	// Public
	r.Mux.HandleFunc("GET /{path...}", h.HandleFollow)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /_/livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /_/readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
