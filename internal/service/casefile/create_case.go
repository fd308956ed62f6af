package casefile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

// Create opens a new case. Requires investigator or above.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Case, error) {
	actor, err := auth.Require(ctx, domain.RoleInvestigator)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(in.CaseNumber)
	if number == "" {
		number = domain.NewRecordNumber(domain.CaseNumberPrefix, s.now())
	}

	c := domain.Case{
		CaseNumber:        number,
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		Type:              strings.TrimSpace(in.Type),
		Status:            domain.CaseStatus(in.Status),
		AssignedOfficerID: in.AssignedOfficerID,
		CreatedBy:         actor.ID,
	}
	if in.Priority != nil {
		p := domain.Priority(*in.Priority)
		c.Priority = &p
	}

	created, err := s.cases.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("casefile.Create: %w", err)
	}

	s.lists.Purge()
	s.audit.Log(ctx, domain.AuditActionCaseCreated, map[string]any{
		"case_id":     created.ID.String(),
		"case_number": created.CaseNumber,
		"title":       created.Title,
	})
	s.log.InfoContext(ctx, "case created",
		slog.String("case_id", created.ID.String()),
		slog.String("case_number", created.CaseNumber),
	)

	return created, nil
}
