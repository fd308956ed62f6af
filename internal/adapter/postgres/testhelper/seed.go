package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile inserts a profile with the given role.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Profile {
	t.Helper()

	suffix := uniqueSuffix()
	p := domain.Profile{
		ID:       uuid.New(),
		Email:    "officer-" + suffix + "@precinct.test",
		FullName: "Officer " + suffix,
		Role:     role,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO profiles (id, email, full_name, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		p.ID, p.Email, p.FullName, string(p.Role),
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed profile: %v", err)
	}

	return p
}

// SeedCase inserts an open case created by createdBy.
func SeedCase(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID, title string) domain.Case {
	t.Helper()

	c := domain.Case{
		ID:         uuid.New(),
		CaseNumber: "CS-TEST-" + uniqueSuffix(),
		Title:      title,
		Type:       "theft",
		Status:     domain.CaseStatusOpen,
		CreatedBy:  createdBy,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO cases (id, case_number, title, type, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		c.ID, c.CaseNumber, c.Title, c.Type, c.CreatedBy,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed case: %v", err)
	}

	return c
}
