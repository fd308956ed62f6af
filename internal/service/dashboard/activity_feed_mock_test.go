package dashboard

import (
	"context"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"sync"
)

var _ activityFeed = &activityFeedMock{}

type activityFeedMock struct {
	RecentFunc func(ctx context.Context, limit int) ([]domain.AuditEntry, error)

	calls struct {
		Recent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockRecent sync.RWMutex
}

func (mock *activityFeedMock) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if mock.RecentFunc == nil {
		panic("activityFeedMock.RecentFunc: method is nil but activityFeed.Recent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, limit)
}

func (mock *activityFeedMock) RecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockRecent.RLock()
	calls = mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}
