package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out audit_trail_mock_test.go -pkg rest . auditTrail

type auditTrail interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
}

// AuditHandler serves the audit trail.
type AuditHandler struct {
	svc auditTrail
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditTrail, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

// List handles GET /api/v1/audit?action=&user_id=&limit=&offset=.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	var f domain.AuditFilter
	var ok bool

	if f.UserID, ok = queryUUID(w, r, "user_id"); !ok {
		return
	}
	if f.Limit, ok = queryInt(w, r, "limit", 0); !ok {
		return
	}
	if f.Offset, ok = queryInt(w, r, "offset", 0); !ok {
		return
	}
	if a := r.URL.Query().Get("action"); a != "" {
		f.Action = &a
	}

	entries, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(entries, toAuditEntryResponse))
}
