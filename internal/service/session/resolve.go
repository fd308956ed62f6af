package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

// Resolve verifies token and loads the caller's profile.
//
// An empty or invalid token yields an unauthenticated State. The profile
// lookup is bounded by the configured fetch timeout and is shared between
// concurrent callers for the same identity.
func (s *Service) Resolve(ctx context.Context, token string) State {
	if token == "" {
		return State{}
	}

	id, err := s.verifier.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return State{}
	}

	st := State{Identity: &id, AccessToken: token}

	p, err := s.loadProfile(ctx, id.ID)
	if err != nil {
		s.log.WarnContext(ctx, "profile unavailable",
			slog.String("user_id", id.ID.String()),
			slog.String("error", err.Error()),
		)
		st.ProfileErr = err
		return st
	}

	st.Profile = &p
	return st
}

func (s *Service) loadProfile(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	if p, ok := s.cache.Get(id); ok {
		return p, nil
	}

	// The shared fetch must outlive any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(id.String(), func() (any, error) {
		fctx, cancel := context.WithTimeout(shared, s.fetchTimeout)
		defer cancel()

		p, err := s.profiles.GetByID(fctx, id)
		switch {
		case err == nil:
			s.cache.Set(id, *p)
			return *p, nil
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrProfileMissing
		case errors.Is(fctx.Err(), context.DeadlineExceeded):
			return nil, domain.ErrProfileTimeout
		default:
			return nil, fmt.Errorf("session.loadProfile: %w", err)
		}
	})

	timer := time.NewTimer(s.fetchTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.Profile{}, res.Err
		}
		return res.Val.(domain.Profile), nil
	case <-timer.C:
		return domain.Profile{}, domain.ErrProfileTimeout
	case <-ctx.Done():
		return domain.Profile{}, ctx.Err()
	}
}
