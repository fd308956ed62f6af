package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/precinct-records/internal/service/session"
	"github.com/heartmarshall/precinct-records/pkg/ctxutil"
)

//go:generate moq -out session_resolver_mock_test.go -pkg middleware . sessionResolver

// AccessTokenCookie carries the access token for browser clients.
const AccessTokenCookie = "access_token"

type sessionResolver interface {
	Resolve(ctx context.Context, token string) session.State
}

type stateKey struct{}

// StateFromCtx returns the resolved session for the request. Outside the
// Session middleware it is the unauthenticated zero State.
func StateFromCtx(ctx context.Context) session.State {
	st, _ := ctx.Value(stateKey{}).(session.State)
	return st
}

// Session resolves the request credentials and stores the outcome in the
// context. It never rejects a request; RequireSession and RequireRole do.
func Session(resolver sessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			st := resolver.Resolve(r.Context(), token)
			ctx := context.WithValue(r.Context(), stateKey{}, st)
			if st.Authenticated() {
				ctx = ctxutil.WithUserID(ctx, st.Identity.ID)
				ctx = ctxutil.WithAccessToken(ctx, st.AccessToken)
				noteUser(w, st.Identity.ID.String())
			}
			if st.Profile != nil {
				ctx = ctxutil.WithRole(ctx, st.Profile.Role.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
