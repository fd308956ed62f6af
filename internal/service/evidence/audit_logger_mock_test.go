package evidence

import (
	"context"
	"sync"
)

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, action string, details map[string]any)

	calls struct {
		Log []struct {
			Ctx     context.Context
			Action  string
			Details map[string]any
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, action string, details map[string]any) {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Action  string
		Details map[string]any
	}{Ctx: ctx, Action: action, Details: details}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	mock.LogFunc(ctx, action, details)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx     context.Context
	Action  string
	Details map[string]any
} {
	var calls []struct {
		Ctx     context.Context
		Action  string
		Details map[string]any
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
