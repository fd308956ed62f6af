package incident

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

const maxTitleLength = 255

// ListInput holds optional list filters.
type ListInput struct {
	Search   string
	Status   string
	Priority string
}

func (i ListInput) filter() (domain.IncidentFilter, error) {
	var f domain.IncidentFilter
	var errs []domain.FieldError

	if s := strings.TrimSpace(i.Search); s != "" {
		f.Search = &s
	}
	if i.Status != "" {
		st := domain.IncidentStatus(i.Status)
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
		return domain.IncidentFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

// CreateInput holds parameters for a new incident. Empty Priority and
// Status take the database defaults (medium, responding).
type CreateInput struct {
	IncidentNumber    string
	Title             string
	Description       *string
	Type              string
	Priority          string
	Status            string
	Location          string
	ReportedBy        *string
	AssignedOfficerID *uuid.UUID
	CaseID            *uuid.UUID
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
	if strings.TrimSpace(i.Location) == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "required"})
	}
	if i.Priority != "" && !domain.Priority(i.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}
	if i.Status != "" && !domain.IncidentStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds optional incident fields; nil means "don't change".
type UpdateInput struct {
	Title             *string
	Description       *string
	Type              *string
	Priority          *string
	Status            *string
	Location          *string
	ReportedBy        *string
	AssignedOfficerID *uuid.UUID
	CaseID            *uuid.UUID
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
	if i.Location != nil && strings.TrimSpace(*i.Location) == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "cannot be empty"})
	}
	if i.Priority != nil && !domain.Priority(*i.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}
	if i.Status != nil && !domain.IncidentStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) params() domain.IncidentUpdateParams {
	p := domain.IncidentUpdateParams{
		Title:             i.Title,
		Description:       i.Description,
		Type:              i.Type,
		Location:          i.Location,
		ReportedBy:        i.ReportedBy,
		AssignedOfficerID: i.AssignedOfficerID,
		CaseID:            i.CaseID,
	}
	if i.Priority != nil {
		pr := domain.Priority(*i.Priority)
		p.Priority = &pr
	}
	if i.Status != nil {
		st := domain.IncidentStatus(*i.Status)
		p.Status = &st
	}
	return p
}

func (i UpdateInput) changedFields() []string {
	var out []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"title", i.Title != nil},
		{"description", i.Description != nil},
		{"type", i.Type != nil},
		{"priority", i.Priority != nil},
		{"status", i.Status != nil},
		{"location", i.Location != nil},
		{"reported_by", i.ReportedBy != nil},
		{"assigned_officer_id", i.AssignedOfficerID != nil},
		{"case_id", i.CaseID != nil},
	} {
		if f.set {
			out = append(out, f.name)
		}
	}
	return out
}
