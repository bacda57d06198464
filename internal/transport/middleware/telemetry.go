package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/userdash-backend/internal/telemetry"
)

// Telemetry returns middleware that records request count and duration
// metrics labeled by the matched route pattern. The pattern is read after
// the handler runs, so it is set for any request the mux has routed.
func Telemetry() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			telemetry.ObserveHTTPRequest(r.Method, routePattern(r), sw.status, time.Since(start))
		})
	}
}

// routePattern returns the matched mux pattern without its method prefix,
// or "unmatched" when routing found no handler.
func routePattern(r *http.Request) string {
	p := r.Pattern
	if i := strings.IndexByte(p, ' '); i >= 0 {
		p = p[i+1:]
	}
	if p == "" {
		return "unmatched"
	}
	return p
}
