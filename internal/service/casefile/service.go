// Package casefile implements case listing and case mutations.
package casefile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/cache"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out case_repo_mock_test.go -pkg casefile . caseRepo
//go:generate moq -out audit_logger_mock_test.go -pkg casefile . auditLogger

type caseRepo interface {
	List(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error)
	GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
	Create(ctx context.Context, c domain.Case) (*domain.Case, error)
	Update(ctx context.Context, caseID uuid.UUID, p domain.CaseUpdateParams) (*domain.Case, error)
}

type auditLogger interface {
	Log(ctx context.Context, action string, details map[string]any)
}

// Service implements case operations.
type Service struct {
	log   *slog.Logger
	cases caseRepo
	audit auditLogger
	lists *cache.Store[string, []domain.Case]
	now   func() time.Time
}

// NewService creates a case service. lists may be nil to disable caching.
func NewService(logger *slog.Logger, cases caseRepo, audit auditLogger, lists *cache.Store[string, []domain.Case]) *Service {
	return &Service{
		log:   logger.With("service", "casefile"),
		cases: cases,
		audit: audit,
		lists: lists,
		now:   time.Now,
	}
}
