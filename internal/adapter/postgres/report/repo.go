// Package report implements the Report repository using PostgreSQL.
package report

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

const table = "reports"

var columns = []string{
	"id", "title", "type", "content", "status", "case_id", "created_by", "created_at", "updated_at",
}

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	Title     string     `db:"title"`
	Type      string     `db:"type"`
	Content   *string    `db:"content"`
	Status    string     `db:"status"`
	CaseID    *uuid.UUID `db:"case_id"`
	CreatedBy uuid.UUID  `db:"created_by"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Report {
	return domain.Report{
		ID:        r.ID,
		Title:     r.Title,
		Type:      r.Type,
		Content:   r.Content,
		Status:    domain.ReportStatus(r.Status),
		CaseID:    r.CaseID,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// List returns reports matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC")

	if f.Search != nil && *f.Search != "" {
		q = q.Where(postgres.ILike("title", *f.Search))
	}
	if f.CaseID != nil {
		q = q.Where(sq.Eq{"case_id": *f.CaseID})
	}
	if f.Scope != nil {
		q = q.Where(sq.Eq{"created_by": f.Scope.OwnerID})
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "reports", nil)
	}

	out := make([]domain.Report, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	rep := res.toDomain()
	return &rep, nil
}

// Create inserts a report. Status defaults to draft when empty.
func (r *Repo) Create(ctx context.Context, rep domain.Report) (*domain.Report, error) {
	if rep.Status == "" {
		rep.Status = domain.ReportStatusDraft
	}

	q := postgres.Builder().Insert(table).
		Columns("title", "type", "content", "status", "case_id", "created_by").
		Values(rep.Title, rep.Type, rep.Content, string(rep.Status), rep.CaseID, rep.CreatedBy).
		Suffix(postgres.Returning(columns...))

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "report", nil)
	}

	out := res.toDomain()
	return &out, nil
}

// Counts returns draft (pending) and completed report totals.
func (r *Repo) Counts(ctx context.Context) (domain.ReportCounts, error) {
	q := postgres.Builder().Select(
		"count(*) FILTER (WHERE status = 'draft') AS pending",
		"count(*) FILTER (WHERE status = 'completed') AS completed",
	).From(table)

	var res struct {
		Pending   int `db:"pending"`
		Completed int `db:"completed"`
	}
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return domain.ReportCounts{}, postgres.MapError(err, "report counts", nil)
	}

	return domain.ReportCounts(res), nil
}
