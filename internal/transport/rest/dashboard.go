package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out dashboard_service_mock_test.go -pkg rest . dashboardService

type dashboardService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	Activity(ctx context.Context) ([]domain.AuditEntry, error)
}

// DashboardHandler serves /api/v1/dashboard.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Stats handles GET /api/v1/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Activity handles GET /api/v1/dashboard/activity.
func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Activity(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(entries, toAuditEntryResponse))
}
