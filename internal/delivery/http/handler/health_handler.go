package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"go-medical-appointment/pkg/response"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

type healthStatus struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Health reports 200 when every dependency answers, 503 otherwise
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := healthStatus{Status: "ok", Dependencies: map[string]string{}}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			status.Status = "degraded"
			status.Dependencies[name] = "down"
			continue
		}
		status.Dependencies[name] = "up"
	}

	if status.Status != "ok" {
		response.JSON(w, http.StatusServiceUnavailable, status)
		return
	}
	response.JSON(w, http.StatusOK, status)
}
