package dashboard

import (
	"context"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"sync"
)

var _ reportCounter = &reportCounterMock{}

type reportCounterMock struct {
	CountsFunc func(ctx context.Context) (domain.ReportCounts, error)

	calls struct {
		Counts []struct{ Ctx context.Context }
	}
	lockCounts sync.RWMutex
}

func (mock *reportCounterMock) Counts(ctx context.Context) (domain.ReportCounts, error) {
	if mock.CountsFunc == nil {
		panic("reportCounterMock.CountsFunc: method is nil but reportCounter.Counts was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, callInfo)
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx)
}

func (mock *reportCounterMock) CountsCalls() []struct{ Ctx context.Context } {
	var calls []struct{ Ctx context.Context }
	mock.lockCounts.RLock()
	calls = mock.calls.Counts
	mock.lockCounts.RUnlock()
	return calls
}
