package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/pkg/ctxutil"
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   uuid.UUID
	Role domain.Role
}

// Scope returns the row scope for list queries. Officers see only rows they
// own; every higher role is unscoped.
func (a Actor) Scope() *domain.Scope {
	if a.Role.AtLeast(domain.RoleInvestigator) {
		return nil
	}
	return &domain.Scope{OwnerID: a.ID}
}

// Require returns the caller from ctx if their role is at least min.
// It fails with ErrUnauthorized when there is no caller and ErrForbidden
// when the role is too low or unknown.
func Require(ctx context.Context, min domain.Role) (Actor, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Actor{}, domain.ErrUnauthorized
	}
	role := domain.Role(ctxutil.RoleFromCtx(ctx))
	if !role.AtLeast(min) {
		return Actor{}, domain.ErrForbidden
	}
	return Actor{ID: id, Role: role}, nil
}
