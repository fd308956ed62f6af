package casefile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

// List returns cases visible to the caller, newest first.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Case, error) {
	actor, err := auth.Require(ctx, domain.RoleOfficer)
	if err != nil {
		return nil, err
	}

	f, err := in.filter()
	if err != nil {
		return nil, err
	}
	f.Scope = actor.Scope()

	key := domain.CacheKey(f.Search, f.Status, f.Priority, f.Scope)
	if cached, ok := s.lists.Get(key); ok {
		return cached, nil
	}

	cases, err := s.cases.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("casefile.List: %w", err)
	}

	s.lists.Set(key, cases)
	return cases, nil
}

// Get returns one case. Officers only see cases they created or are
// assigned to; anything else reads as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	actor, err := auth.Require(ctx, domain.RoleOfficer)
	if err != nil {
		return nil, err
	}

	c, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("casefile.Get: %w", err)
	}

	if scope := actor.Scope(); scope != nil && !visible(c, scope.OwnerID) {
		return nil, fmt.Errorf("casefile.Get: %w", domain.ErrNotFound)
	}
	return c, nil
}

func visible(c *domain.Case, owner uuid.UUID) bool {
	if c.CreatedBy == owner {
		return true
	}
	return c.AssignedOfficerID != nil && *c.AssignedOfficerID == owner
}
