// Package dashboard aggregates landing-page counters and the activity feed.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:generate moq -out case_counter_mock_test.go -pkg dashboard . caseCounter
//go:generate moq -out evidence_counter_mock_test.go -pkg dashboard . evidenceCounter
//go:generate moq -out report_counter_mock_test.go -pkg dashboard . reportCounter
//go:generate moq -out incident_stats_mock_test.go -pkg dashboard . incidentStats
//go:generate moq -out activity_feed_mock_test.go -pkg dashboard . activityFeed

// ActivityLimit is the number of entries in the activity feed.
const ActivityLimit = 10

type caseCounter interface {
	Counts(ctx context.Context, since time.Time) (domain.CaseCounts, error)
}

type evidenceCounter interface {
	Count(ctx context.Context) (int, error)
}

type reportCounter interface {
	Counts(ctx context.Context) (domain.ReportCounts, error)
}

type incidentStats interface {
	Stats(ctx context.Context) (domain.IncidentStats, error)
}

type activityFeed interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// Service computes dashboard data.
type Service struct {
	log       *slog.Logger
	cases     caseCounter
	evidence  evidenceCounter
	reports   reportCounter
	incidents incidentStats
	activity  activityFeed
	now       func() time.Time
}

// NewService creates a dashboard service.
func NewService(
	logger *slog.Logger,
	cases caseCounter,
	evidence evidenceCounter,
	reports reportCounter,
	incidents incidentStats,
	activity activityFeed,
) *Service {
	return &Service{
		log:       logger.With("service", "dashboard"),
		cases:     cases,
		evidence:  evidence,
		reports:   reports,
		incidents: incidents,
		activity:  activity,
		now:       time.Now,
	}
}

// Stats runs the four counter queries concurrently. The first failure
// cancels the rest.
func (s *Service) Stats(ctx context.Context) (domain.DashboardStats, error) {
	if _, err := auth.Require(ctx, domain.RoleOfficer); err != nil {
		return domain.DashboardStats{}, err
	}

	var (
		cases     domain.CaseCounts
		evidence  int
		reports   domain.ReportCounts
		incidents domain.IncidentStats
	)

	monthStart := startOfMonth(s.now())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cases, err = s.cases.Counts(gctx, monthStart)
		return err
	})
	g.Go(func() (err error) {
		evidence, err = s.evidence.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		reports, err = s.reports.Counts(gctx)
		return err
	})
	g.Go(func() (err error) {
		incidents, err = s.incidents.Stats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard.Stats: %w", err)
	}

	return domain.DashboardStats{
		TotalCases:            cases.Total,
		ActiveCases:           cases.Active,
		ClosedCases:           cases.Closed,
		MonthlyNewCases:       cases.SinceDate,
		TotalEvidence:         evidence,
		PendingReports:        reports.Pending,
		CompletedReports:      reports.Completed,
		TotalIncidents:        incidents.Total,
		ActiveIncidents:       incidents.Active,
		HighPriorityIncidents: incidents.HighPriority,
	}, nil
}

// Activity returns the most recent audit entries.
func (s *Service) Activity(ctx context.Context) ([]domain.AuditEntry, error) {
	if _, err := auth.Require(ctx, domain.RoleOfficer); err != nil {
		return nil, err
	}

	entries, err := s.activity.Recent(ctx, ActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Activity: %w", err)
	}
	return entries, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
