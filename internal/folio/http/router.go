package http

import (
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/cors"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/observability"
	"github.com/aussiebroadwan/folio/internal/folio/service"
	"github.com/aussiebroadwan/folio/internal/folio/store"
	"github.com/aussiebroadwan/folio/pkg/httpx"
	"github.com/aussiebroadwan/folio/pkg/lockout"
	"github.com/aussiebroadwan/folio/pkg/slogx"

	_ "github.com/aussiebroadwan/folio/api/folio" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store   store.Store
	limiter *lockout.Limiter
	metrics *observability.Metrics

	SessionService      *service.SessionService
	RegistrationService *service.RegistrationService
	ProfileService      *service.ProfileService
	FollowService       *service.FollowService
	AdminService        *service.AdminService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	limiter *lockout.Limiter,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		limiter:      limiter,
		metrics:      metrics,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// AllowOrigins enables cross-origin requests with credentials from the given
// origins. Without it the API is same-origin only.
func (r *Router) AllowOrigins(origins []string) {
	if len(origins) == 0 {
		return
	}
	r.middlewares = append(r.middlewares, cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Retry-After", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// TrustProxies lets requests arriving from the given proxies name the client
// through X-Forwarded-For or X-Real-IP. Without it the client is always the
// connection's remote address.
func (r *Router) TrustProxies(proxies []netip.Prefix) {
	r.middlewares = append(r.middlewares, httpx.ClientIPMiddleware(proxies))
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerFollows()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Folio API
//	@version		0.1.0
//	@description	Accounts, sessions and follows for the Folio profile service.
//	@description
//	@description				Sessions are HS256 JWTs returned on login and also set as the auth_token cookie.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/folio
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
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(sessionAuthenticator{sessions: r.SessionService}, authError)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Sessions: r.SessionService}

	// POST /login - moderate by IP; the per-IP lockout does the real work
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /change-password - strict by user, it verifies a password
	r.Mux.Handle("POST /api/auth/change-password",
		httpx.Chain(http.HandlerFunc(h.HandleChangePassword),
			r.authn(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	// GET /verify-session answers 200 either way, so it does its own token handling
	r.Mux.Handle("GET /api/auth/verify-session",
		httpx.Chain(http.HandlerFunc(h.HandleVerifySession),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /register - strict by IP (public sign-up)
	r.Mux.Handle("POST /api/register",
		httpx.Chain(&RegisterHandler{Registration: r.RegistrationService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Profiles: r.ProfileService, Follows: r.FollowService}

	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/users/{identifier}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/users/{email}/followers",
		httpx.Chain(http.HandlerFunc(h.HandleFollowers),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/users/{email}/following",
		httpx.Chain(http.HandlerFunc(h.HandleFollowing),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PATCH /api/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateMe),
			r.authn(),
			httpx.RequirePermission(domain.PermProfileWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerFollows() {
	h := &FollowHandler{Follows: r.FollowService}

	r.Mux.Handle("POST /api/follows",
		httpx.Chain(http.HandlerFunc(h.HandleFollow),
			r.authn(),
			httpx.RequirePermission(domain.PermFollowWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/follows/{email}",
		httpx.Chain(http.HandlerFunc(h.HandleUnfollow),
			r.authn(),
			httpx.RequirePermission(domain.PermFollowWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/follows/{email}",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{Admin: r.AdminService}

	owner := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.authn(),
			httpx.RequireRole(domain.RoleOwner),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /api/admin/users", owner(h.HandleListUsers))
	r.Mux.Handle("DELETE /api/admin/users/{email}", owner(h.HandleDeleteUser))
	r.Mux.Handle("POST /api/admin/users/{email}/active", owner(h.HandleSetActive))
	r.Mux.Handle("POST /api/admin/users/{email}/reset-password", owner(h.HandleResetPassword))
	r.Mux.Handle("GET /api/admin/analytics", owner(h.HandleAnalytics))
	r.Mux.Handle("GET /api/admin/follows", owner(h.HandleListFollows))
	r.Mux.Handle("DELETE /api/admin/follows/{follower}/{following}", owner(h.HandleDeleteFollow))
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.limiter),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	if r.metrics != nil {
		r.Mux.Handle("GET /metrics",
			httpx.Chain(r.metrics.Handler(),
				httpx.RateLimitByIP(httpx.PublicLimit),
			),
		)
	}
}
