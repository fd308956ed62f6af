package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

// SQLSTATE codes the schema can raise, mapped to domain sentinels.
var sqlStateErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: case/incident number, profile email
	"23503": domain.ErrNotFound,      // foreign_key_violation: unknown case, profile
	"23514": domain.ErrValidation,    // check_violation: status/priority/role enums
	"23502": domain.ErrValidation,    // not_null_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

const queryCanceled = "57014"

// MapError wraps a pgx error with the entity label and the matching domain
// sentinel. key identifies the row (an id, a record number) and may be nil.
// Context errors, and statement timeouts reported by the server, keep
// matching context.DeadlineExceeded / context.Canceled.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	label := entity
	if key != nil {
		label = fmt.Sprintf("%s %v", entity, key)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", label, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", label, err)
	}

	if pgErr.Code == queryCanceled {
		return fmt.Errorf("%s: %w: %w", label, context.DeadlineExceeded, err)
	}

	sentinel, ok := sqlStateErrors[pgErr.Code]
	if !ok {
		return fmt.Errorf("%s: %w", label, err)
	}
	if pgErr.ConstraintName != "" {
		return fmt.Errorf("%s: %w (%s)", label, sentinel, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", label, sentinel)
}
