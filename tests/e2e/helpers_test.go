//go:build e2e

package e2e_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/userdash-backend/internal/adapter/sim"
	"github.com/heartmarshall/userdash-backend/internal/auth"
	"github.com/heartmarshall/userdash-backend/internal/config"
	"github.com/heartmarshall/userdash-backend/internal/service/dashboard"
	"github.com/heartmarshall/userdash-backend/internal/transport/middleware"
	"github.com/heartmarshall/userdash-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// serverOptions selects the stack variant under test.
type serverOptions struct {
	authEnabled   bool
	ratePerMinute int
}

// setupTestServer bootstraps the authenticated stack with fast,
// deterministic sim providers.
func setupTestServer(t *testing.T) *testServer {
	return newServer(t, serverOptions{authEnabled: true, ratePerMinute: 1000})
}

// setupOpenServer bootstraps the stack without authentication.
func setupOpenServer(t *testing.T) *testServer {
	return newServer(t, serverOptions{authEnabled: false, ratePerMinute: 1000})
}

func newServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()

	// 1. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t: t}, nil))

	// 2. Sim providers: no injected failures, minimal latency, fixed seed.
	simCfg := sim.Config{
		MinDelay: time.Millisecond,
		MaxDelay: 5 * time.Millisecond,
		Seed:     1,
	}
	svc := dashboard.NewService(
		logger,
		sim.NewProfileProviderWithConfig(simCfg, logger),
		sim.NewPostsProviderWithConfig(simCfg, logger),
		sim.NewNotificationsProviderWithConfig(simCfg, logger),
	)

	// 3. JWT manager with a test secret (>= 32 chars).
	jwtMgr := auth.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// 4. The router only reads the telemetry and CORS sections.
	cfg := &config.Config{
		Telemetry: config.TelemetryConfig{Enabled: true},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	}

	// 5. Rate limiter.
	limiter := middleware.NewRateLimiter(opts.ratePerMinute, time.Minute)
	t.Cleanup(limiter.Stop)

	// 6. Router.
	var tokens rest.TokenValidator
	if opts.authEnabled {
		tokens = jwtMgr
	}
	router := rest.NewRouter(
		cfg,
		logger,
		rest.NewDashboardHandler(svc, logger, opts.authEnabled),
		rest.NewHealthHandler("test-version", config.ModeSim),
		limiter,
		tokens,
	)

	// 7. httptest server.
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request and assertion helpers.
// ---------------------------------------------------------------------------

// mintToken issues a signed access token for the given user.
func mintToken(t *testing.T, ts *testServer, userID int64, role string) string {
	t.Helper()

	tok, err := ts.jwt.GenerateAccessToken(userID, role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok
}

// getDashboard requests the dashboard of the given user with an optional
// bearer token and returns status plus decoded JSON body.
func (ts *testServer) getDashboard(t *testing.T, userID, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/users/"+userID+"/dashboard", nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, body
}

// payload extracts a nested object field from a decoded JSON body.
func payload(t *testing.T, body map[string]any, field string) map[string]any {
	t.Helper()

	m, ok := body[field].(map[string]any)
	require.True(t, ok, "expected %q object in body", field)
	return m
}
