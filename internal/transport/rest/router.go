package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/userdash-backend/internal/config"
	"github.com/heartmarshall/userdash-backend/internal/telemetry"
	"github.com/heartmarshall/userdash-backend/internal/transport/middleware"
)

// TokenValidator checks bearer tokens for the Auth middleware.
type TokenValidator interface {
	ValidateAccessToken(token string) (userID int64, role string, err error)
}

// NewRouter assembles the HTTP handler: health probes, the metrics endpoint,
// and the dashboard API behind the middleware chain. A nil tokens validator
// leaves the API open, without authentication.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	dashboard *DashboardHandler,
	health *HealthHandler,
	limiter *middleware.RateLimiter,
	tokens TokenValidator,
) http.Handler {
	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Telemetry(),
		middleware.CORS(cfg.CORS),
		limiter.Limit(),
	}
	if tokens != nil {
		mws = append(mws, middleware.Auth(tokens))
	}
	// Logger runs inside Auth so request logs carry the resolved identity.
	mws = append(mws, middleware.Logger(logger))

	apiHandler := middleware.Chain(mws...)(http.HandlerFunc(dashboard.GetDashboard))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	if cfg.Telemetry.Enabled {
		mux.Handle("GET /metrics", telemetry.Handler())
	}
	mux.Handle("GET /api/v1/users/{userID}/dashboard", apiHandler)
	mux.Handle("OPTIONS /api/v1/users/{userID}/dashboard", apiHandler)

	return mux
}
