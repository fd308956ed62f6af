package middleware

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

// RequireSession rejects requests without a verified identity. Browser
// clients are redirected to loginPath; API clients get 401.
func RequireSession(loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if StateFromCtx(r.Context()).Authenticated() {
				next.ServeHTTP(w, r)
				return
			}

			if wantsHTML(r) {
				target := loginPath + "?redirect=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			writeError(w, http.StatusUnauthorized, "authentication required")
		})
	}
}

// RequireRole rejects callers whose profile role is below min. A caller
// whose profile could not be loaded gets an error describing why.
func RequireRole(min domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := StateFromCtx(r.Context())

			switch {
			case !st.Authenticated():
				writeError(w, http.StatusUnauthorized, "authentication required")
			case st.Profile == nil:
				status, msg := profileFailure(st.ProfileErr)
				writeError(w, status, msg)
			case !st.Profile.Role.AtLeast(min):
				writeError(w, http.StatusForbidden, "insufficient role")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func profileFailure(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProfileTimeout):
		return http.StatusGatewayTimeout, domain.ErrProfileTimeout.Error()
	case errors.Is(err, domain.ErrProfileMissing):
		return http.StatusForbidden, domain.ErrProfileMissing.Error()
	default:
		return http.StatusServiceUnavailable, "profile unavailable, please retry"
	}
}
