package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/precinct-records/internal/adapter/backend"
	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/precinct-records/internal/adapter/postgres/audit"
	caserepo "github.com/heartmarshall/precinct-records/internal/adapter/postgres/casefile"
	evidencerepo "github.com/heartmarshall/precinct-records/internal/adapter/postgres/evidence"
	incidentrepo "github.com/heartmarshall/precinct-records/internal/adapter/postgres/incident"
	profilerepo "github.com/heartmarshall/precinct-records/internal/adapter/postgres/profile"
	reportrepo "github.com/heartmarshall/precinct-records/internal/adapter/postgres/report"
	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/cache"
	"github.com/heartmarshall/precinct-records/internal/config"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/admin"
	"github.com/heartmarshall/precinct-records/internal/service/audit"
	"github.com/heartmarshall/precinct-records/internal/service/casefile"
	"github.com/heartmarshall/precinct-records/internal/service/dashboard"
	"github.com/heartmarshall/precinct-records/internal/service/evidence"
	"github.com/heartmarshall/precinct-records/internal/service/incident"
	"github.com/heartmarshall/precinct-records/internal/service/report"
	"github.com/heartmarshall/precinct-records/internal/service/session"
	"github.com/heartmarshall/precinct-records/internal/transport/middleware"
	"github.com/heartmarshall/precinct-records/internal/transport/rest"
)

// tokenTTL only affects tokens minted locally; verification trusts the
// expiry set by the auth service.
const tokenTTL = time.Hour

// Run loads configuration, wires every component and serves HTTP until ctx
// is cancelled, then drains in-flight requests and pending audit writes.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	// Repositories.
	auditRepo := auditrepo.New(pool)
	caseRepo := caserepo.New(pool)
	evidenceRepo := evidencerepo.New(pool)
	incidentRepo := incidentrepo.New(pool)
	profileRepo := profilerepo.New(pool)
	reportRepo := reportrepo.New(pool)

	// External services.
	backendClient := backend.NewClient(cfg.Backend, logger)
	jwtMgr := auth.NewJWTManager(cfg.Backend.JWTSecret, cfg.Backend.JWTAudience, tokenTTL)

	// Services.
	auditService := audit.NewService(logger, auditRepo, 0)
	sessionService := session.NewService(logger, jwtMgr, profileRepo, backendClient, auditService, cfg.Auth)
	unsubscribe := sessionService.Subscribe(func(ev session.Event, id domain.Identity) {
		logger.Info("auth state changed", slog.String("event", string(ev)), slog.String("user_id", id.ID.String()))
	})
	defer unsubscribe()

	caseService := casefile.NewService(logger, caseRepo, auditService,
		cache.New[string, []domain.Case](cfg.Cache.ListSize, cfg.Cache.ListTTL))
	incidentService := incident.NewService(logger, incidentRepo, auditService,
		cache.New[string, []domain.Incident](cfg.Cache.ListSize, cfg.Cache.ListTTL))
	evidenceService := evidence.NewService(logger, evidenceRepo, backendClient, auditService,
		cache.New[string, []domain.Evidence](cfg.Cache.ListSize, cfg.Cache.ListTTL), cfg.Evidence.MaxUploadBytes)
	reportService := report.NewService(logger, reportRepo, auditService,
		cache.New[string, []domain.Report](cfg.Cache.ListSize, cfg.Cache.ListTTL))
	dashboardService := dashboard.NewService(logger, caseRepo, evidenceRepo, reportRepo, incidentRepo, auditService)
	adminService := admin.NewService(logger, profileRepo, sessionService, auditService)

	// HTTP.
	trustedProxies, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterConfig{
		Logger:         logger,
		Sessions:       sessionService,
		Limiter:        limiter,
		TrustedProxies: trustedProxies,
		CORS:           cfg.CORS,
		Auth:           cfg.Auth,
		RateLimit:      cfg.RateLimit,
	}, rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.HealthCheck{Name: "database", Pinger: pool},
			rest.HealthCheck{Name: "backend", Pinger: backendClient, Optional: true},
		),
		Auth:      rest.NewAuthHandler(sessionService, logger),
		Session:   rest.NewSessionHandler(),
		Dashboard: rest.NewDashboardHandler(dashboardService, logger),
		Cases:     rest.NewCaseHandler(caseService, logger),
		Incidents: rest.NewIncidentHandler(incidentService, logger),
		Evidence:  rest.NewEvidenceHandler(evidenceService, cfg.Evidence.UploadTimeout, logger),
		Reports:   rest.NewReportHandler(reportService, logger),
		Audit:     rest.NewAuditHandler(auditService, logger),
		Admin:     rest.NewAdminHandler(adminService, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	if err := auditService.Close(shutdownCtx); err != nil {
		logger.Warn("audit writes still pending at shutdown", slog.String("error", err.Error()))
	}

	logger.Info("stopped")
	return nil
}
