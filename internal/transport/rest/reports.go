package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/report"
)

//go:generate moq -out report_service_mock_test.go -pkg rest . reportService

type reportService interface {
	List(ctx context.Context, in report.ListInput) ([]domain.Report, error)
	Get(ctx context.Context, reportID uuid.UUID) (*domain.Report, error)
	Create(ctx context.Context, in report.CreateInput) (*domain.Report, error)
}

// ReportHandler serves /api/v1/reports.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reports")}
}

type createReportRequest struct {
	Title   string     `json:"title"`
	Type    string     `json:"type"`
	Content *string    `json:"content"`
	Status  string     `json:"status"`
	CaseID  *uuid.UUID `json:"caseId"`
}

// List handles GET /api/v1/reports?q=&case_id=.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	caseID, ok := queryUUID(w, r, "case_id")
	if !ok {
		return
	}

	reports, err := h.svc.List(r.Context(), report.ListInput{
		Search: r.URL.Query().Get("q"),
		CaseID: caseID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(reports, toReportResponse))
}

// Get handles GET /api/v1/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rep, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(*rep))
}

// Create handles POST /api/v1/reports.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rep, err := h.svc.Create(r.Context(), report.CreateInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReportResponse(*rep))
}
