package rest

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const checkTimeout = 3 * time.Second

// Pinger is a dependency whose availability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and health endpoints.
type HealthHandler struct {
	checks  map[string]Pinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler reporting on the named dependencies.
func NewHealthHandler(version string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, now: time.Now}
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
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 200 when every dependency responds, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())
	status, code := overall(components)
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health reports each dependency with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())
	status, code := overall(components)
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

// probe pings all dependencies concurrently under a shared timeout.
func (h *HealthHandler) probe(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(names))
	)
	var g errgroup.Group
	for _, name := range names {
		g.Go(func() error {
			start := time.Now()
			err := h.checks[name].Ping(ctx)
			latency := time.Since(start)

			st := CompStatus{Status: "ok", Latency: latency.String()}
			if err != nil {
				st = CompStatus{Status: "down", Error: err.Error()}
			}
			mu.Lock()
			components[name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return components
}

func overall(components map[string]CompStatus) (string, int) {
	for _, c := range components {
		if c.Status != "ok" {
			return "down", http.StatusServiceUnavailable
		}
	}
	return "ok", http.StatusOK
}
