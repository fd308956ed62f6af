// Package incident implements the Incident repository using PostgreSQL.
package incident

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

const table = "incidents"

var columns = []string{
	"id", "incident_number", "title", "description", "type", "priority", "status", "location",
	"reported_by", "assigned_officer_id", "case_id", "created_by", "created_at", "updated_at",
}

// Repo provides incident persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new incident repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                uuid.UUID  `db:"id"`
	IncidentNumber    string     `db:"incident_number"`
	Title             string     `db:"title"`
	Description       *string    `db:"description"`
	Type              string     `db:"type"`
	Priority          string     `db:"priority"`
	Status            string     `db:"status"`
	Location          string     `db:"location"`
	ReportedBy        *string    `db:"reported_by"`
	AssignedOfficerID *uuid.UUID `db:"assigned_officer_id"`
	CaseID            *uuid.UUID `db:"case_id"`
	CreatedBy         uuid.UUID  `db:"created_by"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Incident {
	return domain.Incident{
		ID:                r.ID,
		IncidentNumber:    r.IncidentNumber,
		Title:             r.Title,
		Description:       r.Description,
		Type:              r.Type,
		Priority:          domain.Priority(r.Priority),
		Status:            domain.IncidentStatus(r.Status),
		Location:          r.Location,
		ReportedBy:        r.ReportedBy,
		AssignedOfficerID: r.AssignedOfficerID,
		CaseID:            r.CaseID,
		CreatedBy:         r.CreatedBy,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// List returns incidents matching the filter, newest first.
// Search matches title or location.
func (r *Repo) List(ctx context.Context, f domain.IncidentFilter) ([]domain.Incident, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC")

	if f.Search != nil && *f.Search != "" {
		q = q.Where(sq.Or{
			postgres.ILike("title", *f.Search),
			postgres.ILike("location", *f.Search),
		})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.Priority != nil {
		q = q.Where(sq.Eq{"priority": string(*f.Priority)})
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "incidents", nil)
	}

	out := make([]domain.Incident, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns an incident by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "incident", id)
	}

	inc := res.toDomain()
	return &inc, nil
}

// Create inserts an incident. Empty priority and status take the defaults
// (medium, responding).
func (r *Repo) Create(ctx context.Context, inc domain.Incident) (*domain.Incident, error) {
	if inc.Priority == "" {
		inc.Priority = domain.PriorityMedium
	}
	if inc.Status == "" {
		inc.Status = domain.IncidentStatusResponding
	}

	q := postgres.Builder().Insert(table).
		Columns("incident_number", "title", "description", "type", "priority", "status", "location",
			"reported_by", "assigned_officer_id", "case_id", "created_by").
		Values(inc.IncidentNumber, inc.Title, inc.Description, inc.Type, string(inc.Priority), string(inc.Status),
			inc.Location, inc.ReportedBy, inc.AssignedOfficerID, inc.CaseID, inc.CreatedBy).
		Suffix(postgres.Returning(columns...))

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "incident", inc.IncidentNumber)
	}

	out := res.toDomain()
	return &out, nil
}

// Update applies the non-nil fields of p.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.IncidentUpdateParams) (*domain.Incident, error) {
	set := map[string]any{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Type != nil {
		set["type"] = *p.Type
	}
	if p.Priority != nil {
		set["priority"] = string(*p.Priority)
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.ReportedBy != nil {
		set["reported_by"] = *p.ReportedBy
	}
	if p.AssignedOfficerID != nil {
		set["assigned_officer_id"] = *p.AssignedOfficerID
	}
	if p.CaseID != nil {
		set["case_id"] = *p.CaseID
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder().Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns...))

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "incident", id)
	}

	out := res.toDomain()
	return &out, nil
}

// Stats counts incidents by status and priority.
func (r *Repo) Stats(ctx context.Context) (domain.IncidentStats, error) {
	q := postgres.Builder().Select(
		"count(*) AS total",
		"count(*) FILTER (WHERE status <> 'resolved') AS active",
		"count(*) FILTER (WHERE status = 'responding') AS responding",
		"count(*) FILTER (WHERE status = 'investigating') AS investigating",
		"count(*) FILTER (WHERE status = 'resolved') AS resolved",
		"count(*) FILTER (WHERE priority = 'high') AS high_priority",
	).From(table)

	var res struct {
		Total         int `db:"total"`
		Active        int `db:"active"`
		Responding    int `db:"responding"`
		Investigating int `db:"investigating"`
		Resolved      int `db:"resolved"`
		HighPriority  int `db:"high_priority"`
	}
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return domain.IncidentStats{}, postgres.MapError(err, "incident stats", nil)
	}

	return domain.IncidentStats(res), nil
}
