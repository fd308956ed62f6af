package rest

import (
	"context"
	"net/http"
	"time"
)

// probeTimeout bounds each dependency check.
const probeTimeout = 3 * time.Second

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck names one dependency probed by /ready and /health.
type HealthCheck struct {
	Name   string
	Pinger Pinger
	// Optional checks are reported but do not fail readiness.
	Optional bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []HealthCheck
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every required dependency
// answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.probe(r.Context())

	status, body := http.StatusOK, "ok"
	if !healthy {
		status, body = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{
		Status:    body,
		Timestamp: time.Now(),
	})
}

// Health reports every dependency with its latency, plus the build version.
// An optional dependency being down degrades the status without failing it.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.probe(r.Context())

	overall := "ok"
	for _, c := range components {
		if c.Status != "ok" {
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if !healthy {
		overall = "down"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	components := make(map[string]CompStatus, len(h.checks))
	healthy := true

	for _, c := range h.checks {
		pctx, cancel := context.WithTimeout(ctx, probeTimeout)
		start := time.Now()
		err := c.Pinger.Ping(pctx)
		latency := time.Since(start)
		cancel()

		if err != nil {
			components[c.Name] = CompStatus{Status: "down"}
			if !c.Optional {
				healthy = false
			}
			continue
		}
		components[c.Name] = CompStatus{Status: "ok", Latency: latency.String()}
	}
	return components, healthy
}
