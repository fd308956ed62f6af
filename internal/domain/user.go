package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated principal as asserted by the backend auth
// service. It is distinct from the application Profile.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Profile is the application-level user record, linked 1:1 to an Identity.
type Profile struct {
	ID          uuid.UUID
	Email       string
	FullName    string
	BadgeNumber *string
	Department  *string
	Role        Role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SignUpMetadata is attached to a new auth identity and copied into the
// profile row by the backend.
type SignUpMetadata struct {
	FullName    string
	BadgeNumber *string
	Department  *string
	Role        Role
}

// AuthSession is the token pair issued by the backend auth service.
type AuthSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Identity     Identity
}
