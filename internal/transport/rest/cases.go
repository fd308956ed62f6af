package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/casefile"
)

//go:generate moq -out case_service_mock_test.go -pkg rest . caseService

type caseService interface {
	List(ctx context.Context, in casefile.ListInput) ([]domain.Case, error)
	Get(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
	Create(ctx context.Context, in casefile.CreateInput) (*domain.Case, error)
	Update(ctx context.Context, caseID uuid.UUID, in casefile.UpdateInput) (*domain.Case, error)
}

// CaseHandler serves /api/v1/cases.
type CaseHandler struct {
	svc caseService
	log *slog.Logger
}

// NewCaseHandler creates a CaseHandler.
func NewCaseHandler(svc caseService, logger *slog.Logger) *CaseHandler {
	return &CaseHandler{svc: svc, log: logger.With("handler", "cases")}
}

type createCaseRequest struct {
	CaseNumber        string     `json:"caseNumber"`
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	Priority          *string    `json:"priority"`
	AssignedOfficerID *uuid.UUID `json:"assignedOfficerId"`
}

type updateCaseRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Type              *string    `json:"type"`
	Status            *string    `json:"status"`
	Priority          *string    `json:"priority"`
	AssignedOfficerID *uuid.UUID `json:"assignedOfficerId"`
}

// List handles GET /api/v1/cases?q=&status=&priority=.
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cases, err := h.svc.List(r.Context(), casefile.ListInput{
		Search:   q.Get("q"),
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(cases, toCaseResponse))
}

// Get handles GET /api/v1/cases/{id}.
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(*c))
}

// Create handles POST /api/v1/cases.
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), casefile.CreateInput{
		CaseNumber:        req.CaseNumber,
		Title:             req.Title,
		Description:       req.Description,
		Type:              req.Type,
		Status:            req.Status,
		Priority:          req.Priority,
		AssignedOfficerID: req.AssignedOfficerID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCaseResponse(*c))
}

// Update handles PATCH /api/v1/cases/{id}.
func (h *CaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateCaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Update(r.Context(), id, casefile.UpdateInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(*c))
}
