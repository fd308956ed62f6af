// Package audit implements the audit_logs repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

const table = "audit_logs"

var columns = []string{"id", "user_id", "action", "context", "ip_address", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Action    string    `db:"action"`
	Context   []byte    `db:"context"`
	IPAddress *string   `db:"ip_address"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() (domain.AuditEntry, error) {
	e := domain.AuditEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Action:    r.Action,
		IPAddress: r.IPAddress,
		CreatedAt: r.CreatedAt,
	}

	if len(r.Context) > 0 {
		c := make(map[string]any)
		if err := json.Unmarshal(r.Context, &c); err != nil {
			return domain.AuditEntry{}, fmt.Errorf("audit_log %s unmarshal context: %w", r.ID, err)
		}
		e.Context = c
	}

	return e, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends one audit row.
func (r *Repo) Create(ctx context.Context, e domain.AuditEntry) error {
	var contextJSON any
	if e.Context != nil {
		b, err := json.Marshal(e.Context)
		if err != nil {
			return fmt.Errorf("audit_log marshal context: %w", err)
		}
		contextJSON = b
	}

	q := postgres.Builder().Insert(table).
		Columns("user_id", "action", "context", "ip_address").
		Values(e.UserID, e.Action, contextJSON, e.IPAddress)

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_log", e.Action)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns audit rows newest first with optional action/user filters.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC")

	if f.Action != nil && *f.Action != "" {
		q = q.Where(sq.Eq{"action": *f.Action})
	}
	if f.UserID != nil {
		q = q.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	return r.selectEntries(ctx, q)
}

// Recent returns the latest limit audit rows.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	q := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	return r.selectEntries(ctx, q)
}

func (r *Repo) selectEntries(ctx context.Context, q sq.SelectBuilder) ([]domain.AuditEntry, error) {
	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "audit_logs", nil)
	}

	out := make([]domain.AuditEntry, len(rows))
	for i, rw := range rows {
		e, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
