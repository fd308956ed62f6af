package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/pkg/ctxutil"
)

// SignUp registers a new account. The profile row is created by the
// backend from the attached metadata.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*domain.AuthSession, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	sess, err := s.backend.SignUp(ctx, email, in.Password, in.metadata())
	if err != nil {
		return nil, fmt.Errorf("session.SignUp: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("user_id", sess.Identity.ID.String()),
		slog.String("role", in.metadata().Role.String()),
	)
	s.emit(EventSignedUp, sess.Identity)

	return sess, nil
}

// SignIn exchanges email and password for a session.
func (s *Service) SignIn(ctx context.Context, in SignInInput) (*domain.AuthSession, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	sess, err := s.backend.SignIn(ctx, email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("session.SignIn: %w", err)
	}

	actx := ctxutil.WithUserID(ctx, sess.Identity.ID)
	s.audit.Log(actx, domain.AuditActionSignedIn, map[string]any{"email": sess.Identity.Email})
	s.emit(EventSignedIn, sess.Identity)

	return sess, nil
}

// SignOut revokes the caller's session and drops its cached profile.
func (s *Service) SignOut(ctx context.Context, st State) error {
	if !st.Authenticated() {
		return domain.ErrUnauthorized
	}

	if err := s.backend.SignOut(ctx, st.AccessToken); err != nil {
		return fmt.Errorf("session.SignOut: %w", err)
	}

	s.Invalidate(st.Identity.ID)

	actx := ctxutil.WithUserID(ctx, st.Identity.ID)
	s.audit.Log(actx, domain.AuditActionSignedOut, map[string]any{"email": st.Identity.Email})
	s.emit(EventSignedOut, *st.Identity)

	return nil
}
