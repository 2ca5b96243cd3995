package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime"

	"learning-web/internal/adapters/dto"
	"learning-web/internal/core/ports"
)

// APIHandler serves the demo endpoints under /api
type APIHandler struct {
	metrics ports.MetricsProvider
}

// NewAPIHandler creates the handler set. metrics may be nil, in which
// case the system metrics endpoint is not registered.
func NewAPIHandler(metrics ports.MetricsProvider) *APIHandler {
	return &APIHandler{metrics: metrics}
}

// Routes returns the endpoint table for NewDispatcher
func (h *APIHandler) Routes() []Route {
	routes := []Route{
		{Method: http.MethodGet, Path: "/api/health", Handler: h.HandleHealth},
		{Method: http.MethodGet, Path: "/api/data", Handler: h.HandleDataGet},
		{Method: http.MethodPost, Path: "/api/data", Handler: h.HandleDataPost},
	}
	if h.metrics != nil {
		routes = append(routes, Route{Method: http.MethodGet, Path: "/api/system/metrics", Handler: h.HandleSystemMetrics})
	}
	return routes
}

// HandleHealth answers the liveness check
// GET /api/health
func (h *APIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// HandleDataGet returns the fixed sample data set
// GET /api/data
func (h *APIHandler) HandleDataGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.DataListResponse{Data: []int{1, 2, 3, 4, 5}})
}

// HandleDataPost validates a {message} payload and echoes it back trimmed
// POST /api/data
func (h *APIHandler) HandleDataPost(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, err.Error(), "")
			return
		}
		slog.Warn("Failed to read data payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "Invalid request", "")
		return
	}

	payload, err := dto.ParseDataPayload(body)
	if err != nil {
		slog.Debug("Rejected data payload", "reason", err)
		writeJSONError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	writeJSON(w, http.StatusOK, dto.DataReceivedResponse{Received: payload})
}

// HandleSystemMetrics reports host resource usage
// GET /api/system/metrics
func (h *APIHandler) HandleSystemMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.metrics.Snapshot(r.Context())
	if err != nil {
		slog.Error("Failed to collect system metrics", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to collect system metrics", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.SystemMetricsResponse{
		CPUPercent:      metrics.CPUPercent,
		RAMUsedGB:       metrics.MemoryUsedGB,
		RAMTotalGB:      metrics.MemoryTotalGB,
		RAMPercent:      metrics.MemoryPercent,
		DiskUsedGB:      metrics.DiskUsedGB,
		DiskTotalGB:     metrics.DiskTotalGB,
		DiskPercent:     metrics.DiskPercent,
		GoroutinesCount: runtime.NumGoroutine(),
	})
}
