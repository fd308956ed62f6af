// Package admin implements the admin panel: profile listing and role changes.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out profile_repo_mock_test.go -pkg admin . profileRepo
//go:generate moq -out session_invalidator_mock_test.go -pkg admin . sessionInvalidator
//go:generate moq -out audit_logger_mock_test.go -pkg admin . auditLogger

type profileRepo interface {
	List(ctx context.Context) ([]domain.Profile, error)
	GetByID(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error)
	UpdateRole(ctx context.Context, profileID uuid.UUID, role domain.Role) (*domain.Profile, error)
}

type sessionInvalidator interface {
	Invalidate(profileID uuid.UUID)
}

type auditLogger interface {
	Log(ctx context.Context, action string, details map[string]any)
}

// Service implements admin operations. Every method requires the admin role.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	sessions sessionInvalidator
	audit    auditLogger
}

// NewService creates an admin service.
func NewService(logger *slog.Logger, profiles profileRepo, sessions sessionInvalidator, audit auditLogger) *Service {
	return &Service{
		log:      logger.With("service", "admin"),
		profiles: profiles,
		sessions: sessions,
		audit:    audit,
	}
}

// ListProfiles returns every profile.
func (s *Service) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	if _, err := auth.Require(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	out, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.ListProfiles: %w", err)
	}
	return out, nil
}

// SetRole changes a profile's role. Admins cannot demote themselves.
func (s *Service) SetRole(ctx context.Context, profileID uuid.UUID, role string) (*domain.Profile, error) {
	actor, err := auth.Require(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	newRole := domain.Role(role)
	if !newRole.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of officer, investigator, supervisor, admin")
	}
	if actor.ID == profileID && newRole != domain.RoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	before, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("admin.SetRole: %w", err)
	}

	updated, err := s.profiles.UpdateRole(ctx, profileID, newRole)
	if err != nil {
		return nil, fmt.Errorf("admin.SetRole: %w", err)
	}

	s.sessions.Invalidate(profileID)
	s.audit.Log(ctx, domain.AuditActionRoleChanged, map[string]any{
		"profile_id": profileID.String(),
		"from":       before.Role.String(),
		"to":         updated.Role.String(),
	})
	s.log.InfoContext(ctx, "profile role updated",
		slog.String("profile_id", profileID.String()),
		slog.String("new_role", updated.Role.String()),
	)

	return updated, nil
}
