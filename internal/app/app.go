package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/userdash-backend/internal/adapter/httpapi"
	"github.com/heartmarshall/userdash-backend/internal/adapter/sim"
	"github.com/heartmarshall/userdash-backend/internal/auth"
	"github.com/heartmarshall/userdash-backend/internal/config"
	"github.com/heartmarshall/userdash-backend/internal/service/dashboard"
	"github.com/heartmarshall/userdash-backend/internal/transport/middleware"
	"github.com/heartmarshall/userdash-backend/internal/transport/rest"
)

// rateLimiterCleanupInterval is how often idle rate-limit buckets are swept.
const rateLimiterCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the dashboard providers and service, and serves the
// REST API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("provider_mode", cfg.Providers.Mode),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("auth_enabled", cfg.Auth.AuthEnabled()),
	)

	svc := newDashboardService(cfg, logger)

	// A nil validator disables the auth middleware entirely.
	var tokens rest.TokenValidator
	if cfg.Auth.AuthEnabled() {
		tokens = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerMinute, rateLimiterCleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(
		cfg,
		logger,
		rest.NewDashboardHandler(svc, logger, cfg.Auth.AuthEnabled()),
		rest.NewHealthHandler(BuildVersion(), cfg.Providers.Mode),
		limiter,
		tokens,
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down",
			slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}

		logger.Info("shutdown complete")
		return nil

	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// newDashboardService builds the dashboard service with providers selected
// by the configured mode: in-process simulators or real HTTP upstreams.
func newDashboardService(cfg *config.Config, logger *slog.Logger) *dashboard.Service {
	if cfg.Providers.Mode == config.ModeHTTP {
		return dashboard.NewService(
			logger,
			httpapi.NewProfileClient(cfg.Providers.ProfileURL, logger),
			httpapi.NewPostsClient(cfg.Providers.PostsURL, logger),
			httpapi.NewNotificationsClient(cfg.Providers.NotificationsURL, logger),
		)
	}

	simCfg := sim.Config{
		MinDelay:    cfg.Providers.SimMinDelay,
		MaxDelay:    cfg.Providers.SimMaxDelay,
		FailureRate: cfg.Providers.SimFailureRate,
		Seed:        cfg.Providers.SimSeed,
	}

	return dashboard.NewService(
		logger,
		sim.NewProfileProviderWithConfig(simCfg, logger),
		sim.NewPostsProviderWithConfig(simCfg, logger),
		sim.NewNotificationsProviderWithConfig(simCfg, logger),
	)
}
