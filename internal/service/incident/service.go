// Package incident implements incident listing, mutations and statistics.
package incident

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/cache"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out incident_repo_mock_test.go -pkg incident . incidentRepo
//go:generate moq -out audit_logger_mock_test.go -pkg incident . auditLogger

type incidentRepo interface {
	List(ctx context.Context, f domain.IncidentFilter) ([]domain.Incident, error)
	GetByID(ctx context.Context, incidentID uuid.UUID) (*domain.Incident, error)
	Create(ctx context.Context, inc domain.Incident) (*domain.Incident, error)
	Update(ctx context.Context, incidentID uuid.UUID, p domain.IncidentUpdateParams) (*domain.Incident, error)
	Stats(ctx context.Context) (domain.IncidentStats, error)
}

type auditLogger interface {
	Log(ctx context.Context, action string, details map[string]any)
}

// Service implements incident operations. Every authenticated role may
// read and write incidents.
type Service struct {
	log       *slog.Logger
	incidents incidentRepo
	audit     auditLogger
	lists     *cache.Store[string, []domain.Incident]
	now       func() time.Time
}

// NewService creates an incident service. lists may be nil to disable caching.
func NewService(logger *slog.Logger, incidents incidentRepo, audit auditLogger, lists *cache.Store[string, []domain.Incident]) *Service {
	return &Service{
		log:       logger.With("service", "incident"),
		incidents: incidents,
		audit:     audit,
		lists:     lists,
		now:       time.Now,
	}
}

// List returns incidents newest first. Search matches title or location.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Incident, error) {
	if _, err := auth.Require(ctx, domain.RoleOfficer); err != nil {
		return nil, err
	}

	f, err := in.filter()
	if err != nil {
		return nil, err
	}

	key := domain.CacheKey(f.Search, f.Status, f.Priority)
	if cached, ok := s.lists.Get(key); ok {
		return cached, nil
	}

	out, err := s.incidents.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("incident.List: %w", err)
	}

	s.lists.Set(key, out)
	return out, nil
}

// Get returns one incident.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	if _, err := auth.Require(ctx, domain.RoleOfficer); err != nil {
		return nil, err
	}

	inc, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("incident.Get: %w", err)
	}
	return inc, nil
}

// Stats returns counters by status and priority.
func (s *Service) Stats(ctx context.Context) (domain.IncidentStats, error) {
	if _, err := auth.Require(ctx, domain.RoleOfficer); err != nil {
		return domain.IncidentStats{}, err
	}

	st, err := s.incidents.Stats(ctx)
	if err != nil {
		return domain.IncidentStats{}, fmt.Errorf("incident.Stats: %w", err)
	}
	return st, nil
}

// Create records a new incident. IncidentNumber is generated when empty.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Incident, error) {
	actor, err := auth.Require(ctx, domain.RoleOfficer)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(in.IncidentNumber)
	if number == "" {
		number = domain.NewRecordNumber(domain.IncidentNumberPrefix, s.now())
	}

	inc := domain.Incident{
		IncidentNumber:    number,
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		Type:              strings.TrimSpace(in.Type),
		Priority:          domain.Priority(in.Priority),
		Status:            domain.IncidentStatus(in.Status),
		Location:          strings.TrimSpace(in.Location),
		ReportedBy:        in.ReportedBy,
		AssignedOfficerID: in.AssignedOfficerID,
		CaseID:            in.CaseID,
		CreatedBy:         actor.ID,
	}

	created, err := s.incidents.Create(ctx, inc)
	if err != nil {
		return nil, fmt.Errorf("incident.Create: %w", err)
	}

	s.lists.Purge()
	s.audit.Log(ctx, domain.AuditActionIncidentCreated, map[string]any{
		"incident_id":     created.ID.String(),
		"incident_number": created.IncidentNumber,
		"priority":        created.Priority.String(),
	})
	s.log.InfoContext(ctx, "incident created",
		slog.String("incident_id", created.ID.String()),
		slog.String("incident_number", created.IncidentNumber),
	)

	return created, nil
}

// Update changes the given fields of an incident.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.Incident, error) {
	if _, err := auth.Require(ctx, domain.RoleOfficer); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	changed := in.changedFields()
	if len(changed) == 0 {
		return nil, domain.NewValidationError("body", "no fields to update")
	}

	updated, err := s.incidents.Update(ctx, id, in.params())
	if err != nil {
		return nil, fmt.Errorf("incident.Update: %w", err)
	}

	s.lists.Purge()
	s.audit.Log(ctx, domain.AuditActionIncidentUpdated, map[string]any{
		"incident_id":     updated.ID.String(),
		"incident_number": updated.IncidentNumber,
		"fields":          changed,
	})

	return updated, nil
}
