package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/todo/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Limits holds the rate limit profiles. Zero fields fall back to the
// httpx profiles of the same name.
type Limits struct {
	Strict   httpx.RateLimitConfig
	Moderate httpx.RateLimitConfig
	Lenient  httpx.RateLimitConfig
	Public   httpx.RateLimitConfig
}

func (l Limits) withDefaults() Limits {
	return Limits{
		Strict:   l.Strict.OrDefault(httpx.StrictLimit),
		Moderate: l.Moderate.OrDefault(httpx.ModerateLimit),
		Lenient:  l.Lenient.OrDefault(httpx.LenientLimit),
		Public:   l.Public.OrDefault(httpx.PublicLimit),
	}
}

// Options configures the global middleware chain.
type Options struct {
	Version      string
	CookieSecure bool

	// ExposeStacks adds oops stack traces to error bodies. Never in production.
	ExposeStacks bool

	// CORSOrigins are allowed to send credentials. Empty allows any origin
	// without credentials.
	CORSOrigins []string

	BodyLimit int64
	Limits    Limits

	// Metrics and Gatherer are optional. Without a Gatherer /metrics is not
	// mounted.
	Metrics  *httpx.Metrics
	Gatherer prometheus.Gatherer
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	opts      Options
	limits    Limits
	startTime time.Time
	logger    *slog.Logger

	store      store.Store
	Auth       *service.AuthService
	Tokens     *service.TokenService
	Todos      *service.TodoService
	Categories *service.CategoryService
}

func NewRouter(st store.Store, logger *slog.Logger, opts Options) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		opts:      opts,
		limits:    opts.Limits.withDefaults(),
		startTime: time.Now(),
		store:     st,
		logger:    logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
	}
	if opts.ExposeStacks {
		r.middlewares = append(r.middlewares, httpx.ExposeStacks())
	}
	r.middlewares = append(r.middlewares,
		httpx.CORS(opts.CORSOrigins),
		httpx.BodyLimit(opts.BodyLimit),
	)
	// Innermost so r.Pattern is set when it records.
	if opts.Metrics != nil {
		r.middlewares = append(r.middlewares, opts.Metrics.Middleware())
	}

	return r
}

// ApplyRoutes mounts every route. Services must be set before calling it.
func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerTodos()
	r.registerCategories()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.HandleFunc("/", notFoundHandler)

	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Todo API
//	@version		1.0
//	@description	Todo list service with categories, email verification and rotating refresh tokens.
//	@description
//	@description				Every response is wrapped in {statusCode, success, message, data, errors}.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/todo
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
//	@description				JWT access token. Format: "Bearer {token}". The accessToken cookie works too.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h := r.handler
	if h == nil {
		h = httpx.Chain(r.Mux, r.middlewares...)
	}
	h.ServeHTTP(w, req)
}

func (r *Router) sessions() httpx.Middleware {
	v := &SessionVerifier{Tokens: r.Tokens, Auth: r.Auth}
	return v.Middleware()
}

// public wraps h with a per-IP limit.
func (r *Router) public(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h, httpx.RateLimitByIP(limit))
}

// secured authenticates the caller and limits per user.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		r.sessions(),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		Auth:         r.Auth,
		Tokens:       r.Tokens,
		CookieSecure: r.opts.CookieSecure,
	}
	l := r.limits

	// Credential and token endpoints are brute-force targets.
	r.Mux.Handle("POST /api/v1/users/register", r.public(h.HandleRegister, l.Strict))
	r.Mux.Handle("POST /api/v1/users/login", r.public(h.HandleLogin, l.Strict))
	r.Mux.Handle("POST /api/v1/users/refresh-token", r.public(h.HandleRefresh, l.Strict))
	r.Mux.Handle("POST /api/v1/users/forgot-password", r.public(h.HandleForgotPassword, l.Strict))
	r.Mux.Handle("POST /api/v1/users/reset-password/{token}", r.public(h.HandleResetPassword, l.Strict))
	r.Mux.Handle("POST /api/v1/users/reset-password", r.public(h.HandleResetPassword, l.Strict))

	verify := r.public(h.HandleVerifyEmail, l.Moderate)
	r.Mux.Handle("GET /api/v1/users/verify-email/{token}", verify)
	r.Mux.Handle("POST /api/v1/users/verify-email/{token}", verify)

	r.Mux.Handle("POST /api/v1/users/logout", r.secured(h.HandleLogout, l.Moderate))
	r.Mux.Handle("POST /api/v1/users/resend-email-verification", r.secured(h.HandleResendVerification, l.Strict))
	r.Mux.Handle("POST /api/v1/users/change-password", r.secured(h.HandleChangePassword, l.Strict))
	r.Mux.Handle("GET /api/v1/users/current-user", r.secured(h.HandleCurrentUser, l.Lenient))
}

func (r *Router) registerTodos() {
	h := &TodosHandler{Todos: r.Todos}
	l := r.limits

	list := r.secured(h.HandleList, l.Lenient)
	create := r.secured(h.HandleCreate, l.Moderate)
	r.Mux.Handle("GET /api/v1/todos", list)
	r.Mux.Handle("GET /api/v1/todos/{$}", list)
	r.Mux.Handle("POST /api/v1/todos", create)
	r.Mux.Handle("POST /api/v1/todos/{$}", create)

	r.Mux.Handle("GET /api/v1/todos/{id}", r.secured(h.HandleGet, l.Lenient))
	r.Mux.Handle("PUT /api/v1/todos/{id}", r.secured(h.HandleUpdate, l.Moderate))
	r.Mux.Handle("DELETE /api/v1/todos/{id}", r.secured(h.HandleDelete, l.Moderate))
	r.Mux.Handle("PATCH /api/v1/todos/{id}/toggle", r.secured(h.HandleToggle, l.Moderate))
}

func (r *Router) registerCategories() {
	h := &CategoriesHandler{Categories: r.Categories}
	l := r.limits

	list := r.secured(h.HandleList, l.Lenient)
	create := r.secured(h.HandleCreate, l.Moderate)
	r.Mux.Handle("GET /api/v1/categories", list)
	r.Mux.Handle("GET /api/v1/categories/{$}", list)
	r.Mux.Handle("POST /api/v1/categories", create)
	r.Mux.Handle("POST /api/v1/categories/{$}", create)

	r.Mux.Handle("GET /api/v1/categories/{id}", r.secured(h.HandleGet, l.Lenient))
	r.Mux.Handle("PUT /api/v1/categories/{id}", r.secured(h.HandleUpdate, l.Moderate))
	r.Mux.Handle("DELETE /api/v1/categories/{id}", r.secured(h.HandleDelete, l.Moderate))
}

func (r *Router) registerSystem() {
	l := r.limits

	// Monitoring systems poll these frequently.
	r.Mux.Handle("GET /api/v1/healthcheck", r.public(HealthcheckHandler, l.Public))
	r.Mux.Handle("GET /livez", r.public(LivezHandler(r.startTime, r.opts.Version), l.Lenient))
	r.Mux.Handle("GET /readyz", r.public(ReadyzHandler(r.startTime, r.opts.Version, r.store), l.Lenient))

	if r.opts.Gatherer != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.opts.Gatherer, promhttp.HandlerOpts{}))
	}
}
