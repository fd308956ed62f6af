package casefile

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 10000
)

// ListInput holds optional list filters.
type ListInput struct {
	Search   string
	Status   string
	Priority string
}

func (i ListInput) filter() (domain.CaseFilter, error) {
	var f domain.CaseFilter
	var errs []domain.FieldError

	if s := strings.TrimSpace(i.Search); s != "" {
		f.Search = &s
	}
	if i.Status != "" {
		st := domain.CaseStatus(i.Status)
		if !st.IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
		}
		f.Status = &st
	}
	if i.Priority != "" {
		p := domain.Priority(i.Priority)
		if !p.IsValid() {
			errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
		}
		f.Priority = &p
	}

	if len(errs) > 0 {
		return domain.CaseFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

// CreateInput holds parameters for opening a case. CaseNumber is generated
// when empty.
type CreateInput struct {
	CaseNumber        string
	Title             string
	Description       *string
	Type              string
	Status            string
	Priority          *string
	AssignedOfficerID *uuid.UUID
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if strings.TrimSpace(i.Type) == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Status != "" && !domain.CaseStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Priority != nil && !domain.Priority(*i.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds optional case fields; nil means "don't change".
type UpdateInput struct {
	Title             *string
	Description       *string
	Type              *string
	Status            *string
	Priority          *string
	AssignedOfficerID *uuid.UUID
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(*i.Title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Type != nil && strings.TrimSpace(*i.Type) == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "cannot be empty"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Status != nil && !domain.CaseStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Priority != nil && !domain.Priority(*i.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) params() domain.CaseUpdateParams {
	p := domain.CaseUpdateParams{
		Title:             i.Title,
		Description:       i.Description,
		Type:              i.Type,
		AssignedOfficerID: i.AssignedOfficerID,
	}
	if i.Status != nil {
		st := domain.CaseStatus(*i.Status)
		p.Status = &st
	}
	if i.Priority != nil {
		pr := domain.Priority(*i.Priority)
		p.Priority = &pr
	}
	return p
}

// changedFields lists the fields present in the update, for the audit trail.
func (i UpdateInput) changedFields() []string {
	var out []string
	if i.Title != nil {
		out = append(out, "title")
	}
	if i.Description != nil {
		out = append(out, "description")
	}
	if i.Type != nil {
		out = append(out, "type")
	}
	if i.Status != nil {
		out = append(out, "status")
	}
	if i.Priority != nil {
		out = append(out, "priority")
	}
	if i.AssignedOfficerID != nil {
		out = append(out, "assigned_officer_id")
	}
	return out
}
