package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out admin_service_mock_test.go -pkg rest . adminService

type adminService interface {
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	SetRole(ctx context.Context, profileID uuid.UUID, role string) (*domain.Profile, error)
}

// AdminHandler serves the admin panel endpoints.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// ListProfiles handles GET /api/v1/admin/profiles.
func (h *AdminHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.svc.ListProfiles(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(profiles, toProfileResponse))
}

// SetRole handles PATCH /api/v1/admin/profiles/{id}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req setRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.SetRole(r.Context(), id, req.Role)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(*p))
}
