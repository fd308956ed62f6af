package incident

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"sync"
)

var _ incidentRepo = &incidentRepoMock{}

type incidentRepoMock struct {
	ListFunc    func(ctx context.Context, f domain.IncidentFilter) ([]domain.Incident, error)
	GetByIDFunc func(ctx context.Context, incidentID uuid.UUID) (*domain.Incident, error)
	CreateFunc  func(ctx context.Context, inc domain.Incident) (*domain.Incident, error)
	UpdateFunc  func(ctx context.Context, incidentID uuid.UUID, p domain.IncidentUpdateParams) (*domain.Incident, error)
	StatsFunc   func(ctx context.Context) (domain.IncidentStats, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.IncidentFilter
		}
		GetByID []struct {
			Ctx        context.Context
			IncidentID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Inc domain.Incident
		}
		Update []struct {
			Ctx        context.Context
			IncidentID uuid.UUID
			P          domain.IncidentUpdateParams
		}
		Stats []struct{ Ctx context.Context }
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockStats   sync.RWMutex
}

func (mock *incidentRepoMock) List(ctx context.Context, f domain.IncidentFilter) ([]domain.Incident, error) {
	if mock.ListFunc == nil {
		panic("incidentRepoMock.ListFunc: method is nil but incidentRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.IncidentFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *incidentRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.IncidentFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.IncidentFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *incidentRepoMock) GetByID(ctx context.Context, incidentID uuid.UUID) (*domain.Incident, error) {
	if mock.GetByIDFunc == nil {
		panic("incidentRepoMock.GetByIDFunc: method is nil but incidentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		IncidentID uuid.UUID
	}{Ctx: ctx, IncidentID: incidentID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, incidentID)
}

func (mock *incidentRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	IncidentID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		IncidentID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *incidentRepoMock) Create(ctx context.Context, inc domain.Incident) (*domain.Incident, error) {
	if mock.CreateFunc == nil {
		panic("incidentRepoMock.CreateFunc: method is nil but incidentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Inc domain.Incident
	}{Ctx: ctx, Inc: inc}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, inc)
}

func (mock *incidentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Inc domain.Incident
} {
	var calls []struct {
		Ctx context.Context
		Inc domain.Incident
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *incidentRepoMock) Update(ctx context.Context, incidentID uuid.UUID, p domain.IncidentUpdateParams) (*domain.Incident, error) {
	if mock.UpdateFunc == nil {
		panic("incidentRepoMock.UpdateFunc: method is nil but incidentRepo.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		IncidentID uuid.UUID
		P          domain.IncidentUpdateParams
	}{Ctx: ctx, IncidentID: incidentID, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, incidentID, p)
}

func (mock *incidentRepoMock) UpdateCalls() []struct {
	Ctx        context.Context
	IncidentID uuid.UUID
	P          domain.IncidentUpdateParams
} {
	var calls []struct {
		Ctx        context.Context
		IncidentID uuid.UUID
		P          domain.IncidentUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *incidentRepoMock) Stats(ctx context.Context) (domain.IncidentStats, error) {
	if mock.StatsFunc == nil {
		panic("incidentRepoMock.StatsFunc: method is nil but incidentRepo.Stats was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *incidentRepoMock) StatsCalls() []struct{ Ctx context.Context } {
	var calls []struct{ Ctx context.Context }
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
