package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	// info holds components that are reported but never probed, such as
	// which event publisher or completion backend is wired.
	info map[string]string
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithComponentInfo reports a static component status in /health.
func WithComponentInfo(name, status string) HealthOption {
	return func(h *HealthHandler) {
		h.info[name] = status
	}
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{db: db, version: version, info: make(map[string]string)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// pingTimeout bounds the database probe of /ready and /health.
const pingTimeout = 3 * time.Second

func (h *HealthHandler) probeDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(s string) int {
	if s == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 while the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports the database probe with its latency, the build version and
// the static component info. Only the database decides the overall status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus, len(h.info)+1)
	for name, status := range h.info {
		components[name] = CompStatus{Status: status}
	}
	db := h.probeDB(r.Context())
	components["database"] = db

	writeJSON(w, statusCode(db.Status), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
