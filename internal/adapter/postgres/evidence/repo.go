// Package evidence implements the Evidence repository using PostgreSQL.
package evidence

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

const table = "evidence"

var columns = []string{
	"id", "case_id", "filename", "storage_url", "size", "type", "description",
	"tags", "chain_of_custody", "uploaded_by", "uploaded_at",
}

// Repo provides evidence metadata persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new evidence repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             uuid.UUID  `db:"id"`
	CaseID         *uuid.UUID `db:"case_id"`
	Filename       string     `db:"filename"`
	StorageURL     string     `db:"storage_url"`
	Size           int64      `db:"size"`
	Type           string     `db:"type"`
	Description    *string    `db:"description"`
	Tags           []string   `db:"tags"`
	ChainOfCustody []byte     `db:"chain_of_custody"`
	UploadedBy     uuid.UUID  `db:"uploaded_by"`
	UploadedAt     time.Time  `db:"uploaded_at"`
}

func (r row) toDomain() domain.Evidence {
	return domain.Evidence{
		ID:             r.ID,
		CaseID:         r.CaseID,
		Filename:       r.Filename,
		StoragePath:    r.StorageURL,
		Size:           r.Size,
		Type:           r.Type,
		Description:    r.Description,
		Tags:           r.Tags,
		ChainOfCustody: r.ChainOfCustody,
		UploadedBy:     r.UploadedBy,
		UploadedAt:     r.UploadedAt,
	}
}

// List returns evidence matching the filter, most recent upload first.
func (r *Repo) List(ctx context.Context, f domain.EvidenceFilter) ([]domain.Evidence, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("uploaded_at DESC")

	if f.Search != nil && *f.Search != "" {
		q = q.Where(postgres.ILike("filename", *f.Search))
	}
	if f.CaseID != nil {
		q = q.Where(sq.Eq{"case_id": *f.CaseID})
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "evidence", nil)
	}

	out := make([]domain.Evidence, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns an evidence record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Evidence, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "evidence", id)
	}

	e := res.toDomain()
	return &e, nil
}

// Create inserts an evidence record for an already-stored object.
func (r *Repo) Create(ctx context.Context, e domain.Evidence) (*domain.Evidence, error) {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	var custody any
	if len(e.ChainOfCustody) > 0 {
		custody = []byte(e.ChainOfCustody)
	}

	q := postgres.Builder().Insert(table).
		Columns("case_id", "filename", "storage_url", "size", "type", "description", "tags", "chain_of_custody", "uploaded_by").
		Values(e.CaseID, e.Filename, e.StoragePath, e.Size, e.Type, e.Description, tags, custody, e.UploadedBy).
		Suffix(postgres.Returning(columns...))

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "evidence", e.StoragePath)
	}

	out := res.toDomain()
	return &out, nil
}

// Count returns the number of evidence records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.Builder().Select("count(*)").From(table)

	var n int
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, q); err != nil {
		return 0, postgres.MapError(err, "evidence count", nil)
	}
	return n, nil
}
