package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/todo/internal/todo/http"
	"github.com/aussiebroadwan/todo/internal/todo/mail"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/postgres"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

// BuildVersion is set at build time via -ldflags "-X ...app.BuildVersion=v1.2.3".
var BuildVersion = "dev"

const metricsNamespace = "todo"

// Application encapsulates the todo service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	registry *prometheus.Registry

	tokenService        *service.TokenService
	authService         *service.AuthService
	todoService         *service.TodoService
	categoryService     *service.CategoryService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New validates cfg and builds every dependency. The database is migrated
// before New returns.
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, oops.Code("CONFIG_INVALID").Wrap(err)
	}

	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}
	app.logger.Debug("configuration loaded", "config", cfg.Redacted())

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: cfg.Service,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until ctx is done, a shutdown
// signal arrives or the server fails.
func (app *Application) Run(ctx context.Context) error {
	app.housekeepingService.Start()

	app.logger.Info("todo service starting", "port", app.cfg.HTTP.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
	case <-ctx.Done():
		app.logger.Info("context cancelled")
	}

	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Shutdown drains the server, stops the worker and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down todo service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.HTTP.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("todo service stopped")
	return nil
}

// OpenStore connects to the configured database, retrying with backoff
// until it answers a ping or cfg.ConnectTimeout passes. Migrations are not
// applied.
func OpenStore(ctx context.Context, cfg DatabaseConfig, logger *slog.Logger) (store.Store, error) {
	switch cfg.Driver {
	case "sqlite", "postgres":
	default:
		return nil, oops.Code("CONFIG_INVALID").Errorf("unknown database driver %q", cfg.Driver)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	backoff := retry.WithMaxDuration(timeout,
		retry.WithCappedDuration(5*time.Second, retry.NewExponential(250*time.Millisecond)))

	var attempt int
	return retry.DoValue(ctx, backoff, func(ctx context.Context) (store.Store, error) {
		attempt++
		st, err := openStore(ctx, cfg)
		if err == nil {
			err = st.Ping(ctx)
			if err != nil {
				_ = st.Close()
			}
		}
		if err != nil {
			logger.Warn("database not ready", "driver", cfg.Driver, "attempt", attempt, "error", err)
			return nil, retry.RetryableError(err)
		}
		return st, nil
	})
}

func openStore(ctx context.Context, cfg DatabaseConfig) (store.Store, error) {
	if cfg.Driver == "postgres" {
		return postgres.NewStore(ctx, cfg.DSN)
	}
	return sqlite.NewStore(cfg.DSN)
}

// initDatabase opens the store and applies migrations.
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStore(ctx, app.cfg.Database, app.logger)
	if err != nil {
		return oops.Code("DB_INIT_FAILED").With("driver", app.cfg.Database.Driver).Wrap(err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return oops.Code("DB_MIGRATE_FAILED").Wrap(err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.Database.Driver)
	return nil
}

// newMailer picks the mail transport named by cfg.Driver.
func newMailer(cfg MailConfig, logger *slog.Logger) (*mail.Mailer, error) {
	var transport mail.Transport
	switch cfg.Driver {
	case "smtp":
		t, err := mail.NewSMTPTransport(mail.SMTPConfig{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Username: cfg.Username,
			Password: cfg.Password,
			From:     cfg.From,
		})
		if err != nil {
			return nil, err
		}
		transport = t
	default:
		transport = &mail.LogTransport{Logger: logger.With("component", "mail")}
	}
	return mail.New(transport, cfg.AppName), nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() error {
	auth := app.cfg.Auth

	accessSigner, err := jwtx.NewHS256Signer([]byte(auth.AccessTokenSecret))
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("key", "auth.access_token_secret").Wrap(err)
	}
	accessVerifier, err := jwtx.NewHS256Verifier([]byte(auth.AccessTokenSecret), auth.Issuer, 0)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("key", "auth.access_token_secret").Wrap(err)
	}
	refreshSigner, err := jwtx.NewHS256Signer([]byte(auth.RefreshTokenSecret))
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("key", "auth.refresh_token_secret").Wrap(err)
	}
	refreshVerifier, err := jwtx.NewHS256Verifier([]byte(auth.RefreshTokenSecret), auth.Issuer, 0)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("key", "auth.refresh_token_secret").Wrap(err)
	}

	mailer, err := newMailer(app.cfg.Mail, app.logger)
	if err != nil {
		return err
	}

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	authMetrics := service.NewAuthMetrics(app.registry, metricsNamespace)

	app.tokenService = &service.TokenService{
		Store:           app.db,
		AccessSigner:    accessSigner,
		AccessVerifier:  accessVerifier,
		RefreshSigner:   refreshSigner,
		RefreshVerifier: refreshVerifier,
		Issuer:          auth.Issuer,
		AccessTTL:       auth.AccessTokenTTL,
		RefreshTTL:      auth.RefreshTokenTTL,
		Metrics:         authMetrics,
	}
	app.authService = &service.AuthService{
		Store:                     app.db,
		Tokens:                    app.tokenService,
		Mailer:                    mailer,
		BcryptCost:                auth.BcryptCost,
		TemporaryTokenTTL:         auth.TemporaryTokenTTL,
		PublicBaseURL:             app.cfg.HTTP.PublicBaseURL,
		ForgotPasswordRedirectURL: auth.ForgotPasswordRedirectURL,
		ConcealUnknownEmail:       auth.ConcealUnknownEmail,
		Metrics:                   authMetrics,
	}
	app.todoService = &service.TodoService{Store: app.db}
	app.categoryService = &service.CategoryService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.Housekeeping.Interval,
	)
	return nil
}

func limit(c LimitConfig) httpx.RateLimitConfig {
	return httpx.RateLimitConfig{RequestsPerWindow: c.Requests, Window: c.Window, Burst: c.Burst}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	rl := app.cfg.RateLimit
	router := httpapi.NewRouter(app.db, app.logger, httpapi.Options{
		Version:      BuildVersion,
		CookieSecure: app.cfg.Auth.CookieSecure || app.cfg.IsProduction(),
		ExposeStacks: !app.cfg.IsProduction(),
		CORSOrigins:  app.cfg.HTTP.CORSOrigins,
		BodyLimit:    app.cfg.HTTP.BodyLimitBytes,
		Limits: httpapi.Limits{
			Strict:   limit(rl.Strict),
			Moderate: limit(rl.Moderate),
			Lenient:  limit(rl.Lenient),
			Public:   limit(rl.Public),
		},
		Metrics:  httpx.NewMetrics(app.registry, metricsNamespace),
		Gatherer: app.registry,
	})

	router.Tokens = app.tokenService
	router.Auth = app.authService
	router.Todos = app.todoService
	router.Categories = app.categoryService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: app.cfg.HTTP.ReadHeaderTimeout,
	}
}
