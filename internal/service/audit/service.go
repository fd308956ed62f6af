// Package audit records notable mutations in the audit trail.
//
// Writes are fire-and-forget: Log returns immediately and the row is
// inserted on a background goroutine with a context detached from the
// request. A failed write is logged at WARN and dropped.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/pkg/ctxutil"
)

//go:generate moq -out audit_repo_mock_test.go -pkg audit . auditRepo

const (
	// DefaultRecentLimit is the size of the dashboard activity feed.
	DefaultRecentLimit = 10

	defaultWriteTimeout = 5 * time.Second
	defaultListLimit    = 50
	maxListLimit        = 200
)

type auditRepo interface {
	Create(ctx context.Context, e domain.AuditEntry) error
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// Service writes and reads audit entries.
type Service struct {
	log          *slog.Logger
	repo         auditRepo
	writeTimeout time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewService creates an audit service. A non-positive writeTimeout falls
// back to 5s.
func NewService(logger *slog.Logger, repo auditRepo, writeTimeout time.Duration) *Service {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &Service{
		log:          logger.With("service", "audit"),
		repo:         repo,
		writeTimeout: writeTimeout,
	}
}

// Log appends one entry for the actor in ctx. Without an actor it does
// nothing. It never blocks on the database.
func (s *Service) Log(ctx context.Context, action string, details map[string]any) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		s.log.DebugContext(ctx, "audit skipped: no actor", slog.String("action", action))
		return
	}

	entry := domain.AuditEntry{
		UserID:  userID,
		Action:  action,
		Context: details,
	}
	if ip := ctxutil.ClientIPFromCtx(ctx); ip != "" {
		entry.IPAddress = &ip
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.WarnContext(ctx, "audit dropped: writer closed", slog.String("action", action))
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	go func() {
		defer s.wg.Done()

		wctx, cancel := context.WithTimeout(bg, s.writeTimeout)
		defer cancel()

		if err := s.repo.Create(wctx, entry); err != nil {
			s.log.WarnContext(wctx, "audit write failed",
				slog.String("action", action),
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Close stops accepting new entries and waits for in-flight writes or
// until ctx is done.
func (s *Service) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("audit.Close: %w", ctx.Err())
	}
}

// List returns the audit trail. Requires supervisor or above.
func (s *Service) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	if !domain.Role(ctxutil.RoleFromCtx(ctx)).AtLeast(domain.RoleSupervisor) {
		return nil, domain.ErrForbidden
	}

	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}

	entries, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("audit.List: %w", err)
	}
	return entries, nil
}

// Recent returns the latest entries for the activity feed.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	entries, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("audit.Recent: %w", err)
	}
	return entries, nil
}
