package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/links/internal/links/http"
	"github.com/aussiebroadwan/links/internal/links/service"
	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/aussiebroadwan/links/internal/links/store/drivers"
	"github.com/aussiebroadwan/links/pkg/cryptox"
	"github.com/aussiebroadwan/links/pkg/slogx"
)

// BuildVersion is overridden at build time via
// -ldflags "-X github.com/aussiebroadwan/links/internal/links/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the links service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	authService     *service.AuthService
	redirectService *service.RedirectService
	userService     *service.UserService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with the database opened and migrated. Logs go
// to logOut, or stdout when it is nil.
func New(cfg Config, logOut io.Writer) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "links",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			Output:  logOut,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Users exposes account management to the admin commands.
func (app *Application) Users() *service.UserService { return app.userService }

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run serves HTTP until ctx is cancelled, SIGINT/SIGTERM arrives or the
// server fails, then shuts down gracefully.
func (app *Application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.server.Addr, err)
	}

	app.logger.Info("links service starting",
		"addr", ln.Addr().String(),
		"version", BuildVersion,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.Serve(ln)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
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

// Shutdown gives in-flight requests the grace period, then closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down links service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.Close(); err != nil {
		return err
	}

	app.logger.Info("links service stopped")
	return nil
}

// Close releases the database. Admin commands call it directly instead of
// Shutdown.
func (app *Application) Close() error {
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

func (app *Application) initDatabase() error {
	db, err := drivers.Open(app.cfg.Database)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Debug("database ready, migrations applied")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{Store: app.db}
	app.redirectService = &service.RedirectService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.RedirectService = app.redirectService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
