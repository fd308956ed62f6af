// Package casefile implements the Case repository using PostgreSQL.
package casefile

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

const table = "cases"

var columns = []string{
	"id", "case_number", "title", "description", "type", "status", "priority",
	"assigned_officer_id", "created_by", "created_at", "updated_at",
}

// Repo provides case persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new case repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                uuid.UUID  `db:"id"`
	CaseNumber        string     `db:"case_number"`
	Title             string     `db:"title"`
	Description       *string    `db:"description"`
	Type              string     `db:"type"`
	Status            string     `db:"status"`
	Priority          *string    `db:"priority"`
	AssignedOfficerID *uuid.UUID `db:"assigned_officer_id"`
	CreatedBy         uuid.UUID  `db:"created_by"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Case {
	c := domain.Case{
		ID:                r.ID,
		CaseNumber:        r.CaseNumber,
		Title:             r.Title,
		Description:       r.Description,
		Type:              r.Type,
		Status:            domain.CaseStatus(r.Status),
		AssignedOfficerID: r.AssignedOfficerID,
		CreatedBy:         r.CreatedBy,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		c.Priority = &p
	}
	return c
}

// List returns cases matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC")

	if f.Search != nil && *f.Search != "" {
		q = q.Where(postgres.ILike("title", *f.Search))
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.Priority != nil {
		q = q.Where(sq.Eq{"priority": string(*f.Priority)})
	}
	if f.Scope != nil {
		q = q.Where(sq.Or{
			sq.Eq{"created_by": f.Scope.OwnerID},
			sq.Eq{"assigned_officer_id": f.Scope.OwnerID},
		})
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "cases", nil)
	}

	out := make([]domain.Case, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a case by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "case", id)
	}

	c := res.toDomain()
	return &c, nil
}

// Create inserts a case. Status defaults to open when empty.
func (r *Repo) Create(ctx context.Context, c domain.Case) (*domain.Case, error) {
	if c.Status == "" {
		c.Status = domain.CaseStatusOpen
	}

	q := postgres.Builder().Insert(table).
		Columns("case_number", "title", "description", "type", "status", "priority", "assigned_officer_id", "created_by").
		Values(c.CaseNumber, c.Title, c.Description, c.Type, string(c.Status), priorityArg(c.Priority), c.AssignedOfficerID, c.CreatedBy).
		Suffix(postgres.Returning(columns...))

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "case", c.CaseNumber)
	}

	out := res.toDomain()
	return &out, nil
}

// Update applies the non-nil fields of p. With nothing to change it
// returns the current row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.CaseUpdateParams) (*domain.Case, error) {
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
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}
	if p.Priority != nil {
		set["priority"] = string(*p.Priority)
	}
	if p.AssignedOfficerID != nil {
		set["assigned_officer_id"] = *p.AssignedOfficerID
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
		return nil, postgres.MapError(err, "case", id)
	}

	out := res.toDomain()
	return &out, nil
}

func priorityArg(p *domain.Priority) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}

// Counts summarizes all cases; SinceDate counts cases created at or after since.
func (r *Repo) Counts(ctx context.Context, since time.Time) (domain.CaseCounts, error) {
	q := postgres.Builder().Select(
		"count(*) AS total",
		"count(*) FILTER (WHERE status IN ('open', 'in-progress')) AS active",
		"count(*) FILTER (WHERE status = 'closed') AS closed",
	).Column(sq.Expr("count(*) FILTER (WHERE created_at >= ?) AS since_date", since)).From(table)

	var res struct {
		Total     int `db:"total"`
		Active    int `db:"active"`
		Closed    int `db:"closed"`
		SinceDate int `db:"since_date"`
	}
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return domain.CaseCounts{}, postgres.MapError(err, "case counts", nil)
	}

	return domain.CaseCounts(res), nil
}
