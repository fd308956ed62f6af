package session

import "github.com/heartmarshall/precinct-records/internal/domain"

// State is the outcome of resolving a request's credentials.
//
// A nil Identity means Unauthenticated. An authenticated state carries
// either a Profile or the ProfileErr explaining why it is absent
// (domain.ErrProfileTimeout, domain.ErrProfileMissing, or a backend error).
type State struct {
	Identity    *domain.Identity
	AccessToken string
	Profile     *domain.Profile
	ProfileErr  error
}

// Authenticated reports whether a verified identity is present.
func (s State) Authenticated() bool {
	return s.Identity != nil
}

// Role returns the profile role, or "" when no profile is loaded.
func (s State) Role() domain.Role {
	if s.Profile == nil {
		return ""
	}
	return s.Profile.Role
}
