package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/incident"
)

//go:generate moq -out incident_service_mock_test.go -pkg rest . incidentService

type incidentService interface {
	List(ctx context.Context, in incident.ListInput) ([]domain.Incident, error)
	Get(ctx context.Context, incidentID uuid.UUID) (*domain.Incident, error)
	Stats(ctx context.Context) (domain.IncidentStats, error)
	Create(ctx context.Context, in incident.CreateInput) (*domain.Incident, error)
	Update(ctx context.Context, incidentID uuid.UUID, in incident.UpdateInput) (*domain.Incident, error)
}

// IncidentHandler serves /api/v1/incidents.
type IncidentHandler struct {
	svc incidentService
	log *slog.Logger
}

// NewIncidentHandler creates an IncidentHandler.
func NewIncidentHandler(svc incidentService, logger *slog.Logger) *IncidentHandler {
	return &IncidentHandler{svc: svc, log: logger.With("handler", "incidents")}
}

type createIncidentRequest struct {
	IncidentNumber    string     `json:"incidentNumber"`
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	Type              string     `json:"type"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	Location          string     `json:"location"`
	ReportedBy        *string    `json:"reportedBy"`
	AssignedOfficerID *uuid.UUID `json:"assignedOfficerId"`
	CaseID            *uuid.UUID `json:"caseId"`
}

type updateIncidentRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Type              *string    `json:"type"`
	Priority          *string    `json:"priority"`
	Status            *string    `json:"status"`
	Location          *string    `json:"location"`
	ReportedBy        *string    `json:"reportedBy"`
	AssignedOfficerID *uuid.UUID `json:"assignedOfficerId"`
	CaseID            *uuid.UUID `json:"caseId"`
}

// List handles GET /api/v1/incidents?q=&status=&priority=.
func (h *IncidentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	incidents, err := h.svc.List(r.Context(), incident.ListInput{
		Search:   q.Get("q"),
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(incidents, toIncidentResponse))
}

// Stats handles GET /api/v1/incidents/stats.
func (h *IncidentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Get handles GET /api/v1/incidents/{id}.
func (h *IncidentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	inc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toIncidentResponse(*inc))
}

// Create handles POST /api/v1/incidents.
func (h *IncidentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIncidentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inc, err := h.svc.Create(r.Context(), incident.CreateInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toIncidentResponse(*inc))
}

// Update handles PATCH /api/v1/incidents/{id}.
func (h *IncidentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateIncidentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inc, err := h.svc.Update(r.Context(), id, incident.UpdateInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toIncidentResponse(*inc))
}
