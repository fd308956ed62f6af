package rest

import (
	"context"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"sync"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	StatsFunc    func(ctx context.Context) (domain.DashboardStats, error)
	ActivityFunc func(ctx context.Context) ([]domain.AuditEntry, error)

	calls struct {
		Stats    []struct{ Ctx context.Context }
		Activity []struct{ Ctx context.Context }
	}
	lockStats    sync.RWMutex
	lockActivity sync.RWMutex
}

func (mock *dashboardServiceMock) Stats(ctx context.Context) (domain.DashboardStats, error) {
	if mock.StatsFunc == nil {
		panic("dashboardServiceMock.StatsFunc: method is nil but dashboardService.Stats was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *dashboardServiceMock) StatsCalls() []struct{ Ctx context.Context } {
	var calls []struct{ Ctx context.Context }
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *dashboardServiceMock) Activity(ctx context.Context) ([]domain.AuditEntry, error) {
	if mock.ActivityFunc == nil {
		panic("dashboardServiceMock.ActivityFunc: method is nil but dashboardService.Activity was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockActivity.Lock()
	mock.calls.Activity = append(mock.calls.Activity, callInfo)
	mock.lockActivity.Unlock()
	return mock.ActivityFunc(ctx)
}

func (mock *dashboardServiceMock) ActivityCalls() []struct{ Ctx context.Context } {
	var calls []struct{ Ctx context.Context }
	mock.lockActivity.RLock()
	calls = mock.calls.Activity
	mock.lockActivity.RUnlock()
	return calls
}
