package rest

import (
	"net/http"
	"time"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	version      string
	providerMode string
	started      time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version, providerMode string) *HealthHandler {
	return &HealthHandler{
		version:      version,
		providerMode: providerMode,
		started:      time.Now(),
	}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status       string    `json:"status"`
	Version      string    `json:"version,omitempty"`
	ProviderMode string    `json:"providerMode,omitempty"`
	Uptime       string    `json:"uptime,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. The service holds no stateful dependencies,
// so readiness follows liveness.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "ok",
		Version:      h.version,
		ProviderMode: h.providerMode,
		Uptime:       time.Since(h.started).Round(time.Second).String(),
		Timestamp:    time.Now(),
	})
}
