// Package report implements written reports.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/cache"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out report_repo_mock_test.go -pkg report . reportRepo
//go:generate moq -out audit_logger_mock_test.go -pkg report . auditLogger

// Report kinds offered by the reports page.
var reportTypes = map[string]bool{
	"incident":      true,
	"investigation": true,
	"statistical":   true,
	"custom":        true,
}

type reportRepo interface {
	List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error)
	GetByID(ctx context.Context, reportID uuid.UUID) (*domain.Report, error)
	Create(ctx context.Context, rep domain.Report) (*domain.Report, error)
}

type auditLogger interface {
	Log(ctx context.Context, action string, details map[string]any)
}

// Service implements report operations.
type Service struct {
	log     *slog.Logger
	reports reportRepo
	audit   auditLogger
	lists   *cache.Store[string, []domain.Report]
}

// NewService creates a report service.
func NewService(logger *slog.Logger, reports reportRepo, audit auditLogger, lists *cache.Store[string, []domain.Report]) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		reports: reports,
		audit:   audit,
		lists:   lists,
	}
}

// ListInput holds optional list filters.
type ListInput struct {
	Search string
	CaseID *uuid.UUID
}

// CreateInput holds parameters for a new report.
type CreateInput struct {
	Title   string
	Type    string
	Content *string
	Status  string
	CaseID  *uuid.UUID
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if !reportTypes[i.Type] {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of incident, investigation, statistical, custom"})
	}
	if i.Status != "" && !domain.ReportStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns reports newest first. Officers see only their own.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Report, error) {
	actor, err := auth.Require(ctx, domain.RoleOfficer)
	if err != nil {
		return nil, err
	}

	f := domain.ReportFilter{CaseID: in.CaseID, Scope: actor.Scope()}
	if q := strings.TrimSpace(in.Search); q != "" {
		f.Search = &q
	}

	key := domain.CacheKey(f.Search, f.CaseID, f.Scope)
	if cached, ok := s.lists.Get(key); ok {
		return cached, nil
	}

	out, err := s.reports.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("report.List: %w", err)
	}

	s.lists.Set(key, out)
	return out, nil
}

// Get returns one report. An officer asking for someone else's report gets
// ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	actor, err := auth.Require(ctx, domain.RoleOfficer)
	if err != nil {
		return nil, err
	}

	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.Get: %w", err)
	}
	if scope := actor.Scope(); scope != nil && rep.CreatedBy != scope.OwnerID {
		return nil, fmt.Errorf("report.Get: %w", domain.ErrNotFound)
	}
	return rep, nil
}

// Create writes a new report. Status defaults to draft.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Report, error) {
	actor, err := auth.Require(ctx, domain.RoleOfficer)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rep, err := s.reports.Create(ctx, domain.Report{
		Title:     strings.TrimSpace(in.Title),
		Type:      in.Type,
		Content:   in.Content,
		Status:    domain.ReportStatus(in.Status),
		CaseID:    in.CaseID,
		CreatedBy: actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("report.Create: %w", err)
	}

	s.lists.Purge()
	details := map[string]any{
		"report_id": rep.ID.String(),
		"title":     rep.Title,
		"type":      rep.Type,
		"status":    rep.Status.String(),
	}
	if rep.CaseID != nil {
		details["case_id"] = rep.CaseID.String()
	}
	s.audit.Log(ctx, domain.AuditActionReportCreated, details)

	return rep, nil
}
