// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

const table = "profiles"

var columns = []string{
	"id", "email", "full_name", "badge_number", "department", "role", "created_at", "updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	Email       string    `db:"email"`
	FullName    string    `db:"full_name"`
	BadgeNumber *string   `db:"badge_number"`
	Department  *string   `db:"department"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// toDomain converts a row; unknown roles are read as officer.
func (r row) toDomain() domain.Profile {
	return domain.Profile{
		ID:          r.ID,
		Email:       r.Email,
		FullName:    r.FullName,
		BadgeNumber: r.BadgeNumber,
		Department:  r.Department,
		Role:        domain.SanitizeRole(r.Role),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// GetByID returns exactly one profile for the identity.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	p := res.toDomain()
	return &p, nil
}

// List returns all profiles, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "profiles", nil)
	}

	out := make([]domain.Profile, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// UpdateRole sets a profile's role and returns the updated profile.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Profile, error) {
	q := postgres.Builder().Update(table).
		Set("role", string(role)).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns...))

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	p := res.toDomain()
	return &p, nil
}

// Upsert inserts a profile or refreshes its descriptive fields and role.
func (r *Repo) Upsert(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	q := postgres.Builder().Insert(table).
		Columns("id", "email", "full_name", "badge_number", "department", "role").
		Values(p.ID, p.Email, p.FullName, p.BadgeNumber, p.Department, string(p.Role)).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			badge_number = EXCLUDED.badge_number,
			department = EXCLUDED.department,
			role = EXCLUDED.role
		` + postgres.Returning(columns...))

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}

	out := res.toDomain()
	return &out, nil
}
