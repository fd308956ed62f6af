package casefile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

// Update changes the given fields of a case. Requires investigator or above.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.Case, error) {
	if _, err := auth.Require(ctx, domain.RoleInvestigator); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	changed := in.changedFields()
	if len(changed) == 0 {
		return nil, domain.NewValidationError("body", "no fields to update")
	}

	updated, err := s.cases.Update(ctx, id, in.params())
	if err != nil {
		return nil, fmt.Errorf("casefile.Update: %w", err)
	}

	s.lists.Purge()
	s.audit.Log(ctx, domain.AuditActionCaseUpdated, map[string]any{
		"case_id":     updated.ID.String(),
		"case_number": updated.CaseNumber,
		"fields":      changed,
	})

	return updated, nil
}
