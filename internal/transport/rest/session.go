package rest

import (
	"errors"
	"net/http"

	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/navigation"
	"github.com/heartmarshall/precinct-records/internal/transport/middleware"
)

// SessionHandler exposes the resolved session and the role-derived
// navigation.
type SessionHandler struct{}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type sessionResponse struct {
	Identity     identityResponse `json:"identity"`
	Profile      *profileResponse `json:"profile,omitempty"`
	ProfileError string           `json:"profileError,omitempty"`
	Navigation   *navigation.Menu `json:"navigation,omitempty"`
}

// Current handles GET /api/v1/session. A missing or slow profile is
// reported in the body rather than failing the request, so clients can
// show the message and offer a retry.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	st := middleware.StateFromCtx(r.Context())
	if !st.Authenticated() {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	resp := sessionResponse{
		Identity: identityResponse{ID: st.Identity.ID, Email: st.Identity.Email},
	}
	switch {
	case st.Profile != nil:
		p := toProfileResponse(*st.Profile)
		menu := navigation.For(st.Profile.Role)
		resp.Profile = &p
		resp.Navigation = &menu
	case st.ProfileErr != nil:
		resp.ProfileError = profileErrorMessage(st.ProfileErr)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Navigation handles GET /api/v1/navigation.
func (h *SessionHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, navigation.For(middleware.StateFromCtx(r.Context()).Role()))
}

func profileErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrProfileTimeout):
		return domain.ErrProfileTimeout.Error()
	case errors.Is(err, domain.ErrProfileMissing):
		return domain.ErrProfileMissing.Error()
	default:
		return "profile unavailable, please retry"
	}
}
