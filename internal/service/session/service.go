// Package session resolves request credentials into an authenticated
// identity plus its application profile, and fronts the backend auth
// service for sign-up, sign-in and sign-out.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/precinct-records/internal/cache"
	"github.com/heartmarshall/precinct-records/internal/config"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out token_verifier_mock_test.go -pkg session . tokenVerifier
//go:generate moq -out profile_repo_mock_test.go -pkg session . profileRepo
//go:generate moq -out auth_backend_mock_test.go -pkg session . authBackend
//go:generate moq -out audit_logger_mock_test.go -pkg session . auditLogger

type tokenVerifier interface {
	ValidateAccessToken(token string) (domain.Identity, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error)
}

type authBackend interface {
	SignUp(ctx context.Context, email string, password string, meta domain.SignUpMetadata) (*domain.AuthSession, error)
	SignIn(ctx context.Context, email string, password string) (*domain.AuthSession, error)
	SignOut(ctx context.Context, accessToken string) error
}

type auditLogger interface {
	Log(ctx context.Context, action string, details map[string]any)
}

// Service resolves sessions and manages sign-in state.
type Service struct {
	log      *slog.Logger
	verifier tokenVerifier
	profiles profileRepo
	backend  authBackend
	audit    auditLogger

	fetchTimeout time.Duration
	cache        *cache.Store[uuid.UUID, domain.Profile]
	inflight     singleflight.Group

	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
}

// NewService creates a session service.
func NewService(
	logger *slog.Logger,
	verifier tokenVerifier,
	profiles profileRepo,
	backend authBackend,
	audit auditLogger,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "session"),
		verifier:     verifier,
		profiles:     profiles,
		backend:      backend,
		audit:        audit,
		fetchTimeout: cfg.ProfileFetchTimeout,
		cache:        cache.New[uuid.UUID, domain.Profile](cfg.ProfileCacheSize, cfg.ProfileCacheTTL),
		listeners:    make(map[int]Listener),
	}
}

// Invalidate drops the cached profile for id so the next request refetches it.
func (s *Service) Invalidate(id uuid.UUID) {
	s.cache.Remove(id)
}
