// Package testhelper provides a migrated PostgreSQL for repository
// integration tests and seeds fixture rows.
package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	"github.com/heartmarshall/precinct-records/internal/config"
	"github.com/heartmarshall/precinct-records/migrations"
)

// dsnEnv points the helper at an existing database instead of a container.
const dsnEnv = "RECORDS_TEST_DSN"

var (
	setupOnce sync.Once
	testDSN   string
	setupErr  error
)

// SetupTestDB returns a pool on a migrated records database. The database is
// prepared once per test binary; each call gets its own pool closed on
// cleanup. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("testhelper: database tests skipped in -short mode")
	}

	setupOnce.Do(func() {
		testDSN, setupErr = prepareDatabase()
	})
	if setupErr != nil {
		t.Fatalf("testhelper: %v", setupErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:              testDSN,
		MaxConns:         8,
		StatementTimeout: 30 * time.Second,
		ApplicationName:  "precinct-records-test",
	})
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepareDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	if err := ensureAuthUsers(ctx, dsn); err != nil {
		return "", err
	}
	if _, err := postgres.Migrate(ctx, dsn, migrations.FS); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}

// ensureAuthUsers stands in for the hosted backend's identity table so the
// sign-up trigger migration has something to attach to.
func ensureAuthUsers(ctx context.Context, dsn string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `
		CREATE SCHEMA IF NOT EXISTS auth;
		CREATE TABLE IF NOT EXISTS auth.users (
			id                 uuid PRIMARY KEY,
			email              text,
			raw_user_meta_data jsonb
		)`)
	if err != nil {
		return fmt.Errorf("create auth.users: %w", err)
	}
	return nil
}

func startContainer(ctx context.Context) (string, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "records",
				"POSTGRES_PASSWORD": "records",
				"POSTGRES_DB":       "records",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	return fmt.Sprintf("postgres://records:records@%s:%s/records?sslmode=disable", host, port.Port()), nil
}
