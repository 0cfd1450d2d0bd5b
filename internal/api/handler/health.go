package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/api/response"
)

// Pinger checks connectivity to a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	db      Pinger
	redis   Pinger
	version string
}

// NewHealthHandler creates a new HealthHandler. Either pinger may be nil.
func NewHealthHandler(db, redis Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, version: version}
}

type dependencyStatus struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

type healthData struct {
	Status   string           `json:"status"`
	Version  string           `json:"version"`
	Database dependencyStatus `json:"database"`
	Redis    dependencyStatus `json:"redis"`
}

func check(ctx context.Context, name string, p Pinger) dependencyStatus {
	if p == nil {
		return dependencyStatus{Error: "not configured"}
	}
	if err := p.Ping(ctx); err != nil {
		slog.Warn("health check failed", "dependency", name, "error", err)
		return dependencyStatus{Error: err.Error()}
	}
	return dependencyStatus{Connected: true}
}

// ServeHTTP handles the health check request. The service reports degraded
// with 503 when any dependency is unreachable.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	data := healthData{
		Status:   "healthy",
		Version:  h.version,
		Database: check(r.Context(), "database", h.db),
		Redis:    check(r.Context(), "redis", h.redis),
	}

	status := http.StatusOK
	if !data.Database.Connected || !data.Redis.Connected {
		data.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	response.Success(w, status, data, requestID)
}
