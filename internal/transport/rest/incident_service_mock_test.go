package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/incident"
	"sync"
)

var _ incidentService = &incidentServiceMock{}

type incidentServiceMock struct {
	ListFunc   func(ctx context.Context, in incident.ListInput) ([]domain.Incident, error)
	GetFunc    func(ctx context.Context, incidentID uuid.UUID) (*domain.Incident, error)
	StatsFunc  func(ctx context.Context) (domain.IncidentStats, error)
	CreateFunc func(ctx context.Context, in incident.CreateInput) (*domain.Incident, error)
	UpdateFunc func(ctx context.Context, incidentID uuid.UUID, in incident.UpdateInput) (*domain.Incident, error)

	calls struct {
		List []struct {
			Ctx context.Context
			In  incident.ListInput
		}
		Get []struct {
			Ctx        context.Context
			IncidentID uuid.UUID
		}
		Stats  []struct{ Ctx context.Context }
		Create []struct {
			Ctx context.Context
			In  incident.CreateInput
		}
		Update []struct {
			Ctx        context.Context
			IncidentID uuid.UUID
			In         incident.UpdateInput
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockStats  sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *incidentServiceMock) List(ctx context.Context, in incident.ListInput) ([]domain.Incident, error) {
	if mock.ListFunc == nil {
		panic("incidentServiceMock.ListFunc: method is nil but incidentService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  incident.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *incidentServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  incident.ListInput
} {
	var calls []struct {
		Ctx context.Context
		In  incident.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *incidentServiceMock) Get(ctx context.Context, incidentID uuid.UUID) (*domain.Incident, error) {
	if mock.GetFunc == nil {
		panic("incidentServiceMock.GetFunc: method is nil but incidentService.Get was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		IncidentID uuid.UUID
	}{Ctx: ctx, IncidentID: incidentID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, incidentID)
}

func (mock *incidentServiceMock) GetCalls() []struct {
	Ctx        context.Context
	IncidentID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		IncidentID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *incidentServiceMock) Stats(ctx context.Context) (domain.IncidentStats, error) {
	if mock.StatsFunc == nil {
		panic("incidentServiceMock.StatsFunc: method is nil but incidentService.Stats was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *incidentServiceMock) StatsCalls() []struct{ Ctx context.Context } {
	var calls []struct{ Ctx context.Context }
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *incidentServiceMock) Create(ctx context.Context, in incident.CreateInput) (*domain.Incident, error) {
	if mock.CreateFunc == nil {
		panic("incidentServiceMock.CreateFunc: method is nil but incidentService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  incident.CreateInput
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *incidentServiceMock) CreateCalls() []struct {
	Ctx context.Context
	In  incident.CreateInput
} {
	var calls []struct {
		Ctx context.Context
		In  incident.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *incidentServiceMock) Update(ctx context.Context, incidentID uuid.UUID, in incident.UpdateInput) (*domain.Incident, error) {
	if mock.UpdateFunc == nil {
		panic("incidentServiceMock.UpdateFunc: method is nil but incidentService.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		IncidentID uuid.UUID
		In         incident.UpdateInput
	}{Ctx: ctx, IncidentID: incidentID, In: in}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, incidentID, in)
}

func (mock *incidentServiceMock) UpdateCalls() []struct {
	Ctx        context.Context
	IncidentID uuid.UUID
	In         incident.UpdateInput
} {
	var calls []struct {
		Ctx        context.Context
		IncidentID uuid.UUID
		In         incident.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
