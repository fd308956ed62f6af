package dashboard

import (
	"context"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"sync"
	"time"
)

var _ caseCounter = &caseCounterMock{}

type caseCounterMock struct {
	CountsFunc func(ctx context.Context, since time.Time) (domain.CaseCounts, error)

	calls struct {
		Counts []struct {
			Ctx   context.Context
			Since time.Time
		}
	}
	lockCounts sync.RWMutex
}

func (mock *caseCounterMock) Counts(ctx context.Context, since time.Time) (domain.CaseCounts, error) {
	if mock.CountsFunc == nil {
		panic("caseCounterMock.CountsFunc: method is nil but caseCounter.Counts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Since time.Time
	}{Ctx: ctx, Since: since}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, callInfo)
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx, since)
}

func (mock *caseCounterMock) CountsCalls() []struct {
	Ctx   context.Context
	Since time.Time
} {
	var calls []struct {
		Ctx   context.Context
		Since time.Time
	}
	mock.lockCounts.RLock()
	calls = mock.calls.Counts
	mock.lockCounts.RUnlock()
	return calls
}
