// Package evidence stores evidence files in object storage and keeps their
// metadata rows.
package evidence

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/cache"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out evidence_repo_mock_test.go -pkg evidence . evidenceRepo
//go:generate moq -out object_store_mock_test.go -pkg evidence . objectStore
//go:generate moq -out audit_logger_mock_test.go -pkg evidence . auditLogger

// DefaultMaxUploadBytes is the per-file limit when none is configured (100 MiB).
const DefaultMaxUploadBytes int64 = 100 << 20

type evidenceRepo interface {
	List(ctx context.Context, f domain.EvidenceFilter) ([]domain.Evidence, error)
	GetByID(ctx context.Context, evidenceID uuid.UUID) (*domain.Evidence, error)
	Create(ctx context.Context, e domain.Evidence) (*domain.Evidence, error)
}

type objectStore interface {
	Upload(ctx context.Context, bearer string, path string, contentType string, size int64, r io.Reader) error
	PublicURL(path string) string
}

type auditLogger interface {
	Log(ctx context.Context, action string, details map[string]any)
}

// Service implements evidence operations. All of them require investigator
// or above.
type Service struct {
	log      *slog.Logger
	repo     evidenceRepo
	store    objectStore
	audit    auditLogger
	lists    *cache.Store[string, []domain.Evidence]
	maxBytes int64
	now      func() time.Time
}

// NewService creates an evidence service.
func NewService(
	logger *slog.Logger,
	repo evidenceRepo,
	store objectStore,
	audit auditLogger,
	lists *cache.Store[string, []domain.Evidence],
	maxBytes int64,
) *Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &Service{
		log:      logger.With("service", "evidence"),
		repo:     repo,
		store:    store,
		audit:    audit,
		lists:    lists,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// MaxUploadBytes returns the per-file size limit.
func (s *Service) MaxUploadBytes() int64 { return s.maxBytes }

// URL returns the public download URL for a stored object.
func (s *Service) URL(e domain.Evidence) string {
	return s.store.PublicURL(e.StoragePath)
}
