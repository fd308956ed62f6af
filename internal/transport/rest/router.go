package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/precinct-records/internal/config"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/session"
	"github.com/heartmarshall/precinct-records/internal/transport/middleware"
)

//go:generate moq -out session_resolver_mock_test.go -pkg rest . sessionResolver

type sessionResolver interface {
	Resolve(ctx context.Context, token string) session.State
}

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Session   *SessionHandler
	Dashboard *DashboardHandler
	Cases     *CaseHandler
	Incidents *IncidentHandler
	Evidence  *EvidenceHandler
	Reports   *ReportHandler
	Audit     *AuditHandler
	Admin     *AdminHandler
}

// RouterConfig holds the cross-cutting dependencies of the HTTP surface.
// A nil Limiter disables rate limiting. TrustedProxies gates which peers
// may set the client address through forwarding headers.
type RouterConfig struct {
	Logger         *slog.Logger
	Sessions       sessionResolver
	Limiter        *middleware.RateLimiter
	TrustedProxies []netip.Prefix
	CORS           config.CORSConfig
	Auth           config.AuthConfig
	RateLimit      config.RateLimitConfig
}

// NewRouter builds the HTTP handler. Every request passes through the
// session resolver; route groups then demand a session and a minimum role.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID,
		middleware.ClientIP(cfg.TrustedProxies),
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.CORS),
		middleware.Session(cfg.Sessions),
	)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	limit := func(next http.Handler) http.Handler { return next }
	if cfg.Limiter != nil {
		limit = cfg.Limiter.Limit(cfg.RateLimit.AuthRequests, cfg.RateLimit.AuthWindow)
	}

	r.Route("/auth", func(r chi.Router) {
		r.With(limit).Post("/signup", h.Auth.SignUp)
		r.With(limit).Post("/signin", h.Auth.SignIn)
		r.With(middleware.RequireSession(cfg.Auth.LoginPath)).Post("/signout", h.Auth.SignOut)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireSession(cfg.Auth.LoginPath))

		r.Get("/session", h.Session.Current)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleOfficer))

			r.Get("/navigation", h.Session.Navigation)
			r.Get("/dashboard/stats", h.Dashboard.Stats)
			r.Get("/dashboard/activity", h.Dashboard.Activity)

			r.Get("/cases", h.Cases.List)
			r.Get("/cases/{id}", h.Cases.Get)

			r.Get("/incidents", h.Incidents.List)
			r.Get("/incidents/stats", h.Incidents.Stats)
			r.Get("/incidents/{id}", h.Incidents.Get)
			r.Post("/incidents", h.Incidents.Create)
			r.Patch("/incidents/{id}", h.Incidents.Update)

			r.Get("/reports", h.Reports.List)
			r.Get("/reports/{id}", h.Reports.Get)
			r.Post("/reports", h.Reports.Create)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleInvestigator))

			r.Post("/cases", h.Cases.Create)
			r.Patch("/cases/{id}", h.Cases.Update)

			r.Get("/evidence", h.Evidence.List)
			r.Get("/evidence/{id}", h.Evidence.Get)
			r.Post("/evidence", h.Evidence.Upload)
		})

		r.With(middleware.RequireRole(domain.RoleSupervisor)).Get("/audit", h.Audit.List)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleAdmin))

			r.Get("/profiles", h.Admin.ListProfiles)
			r.Patch("/profiles/{id}/role", h.Admin.SetRole)
		})
	})

	return r
}
