package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/casefile"
	"sync"
)

var _ caseService = &caseServiceMock{}

type caseServiceMock struct {
	ListFunc   func(ctx context.Context, in casefile.ListInput) ([]domain.Case, error)
	GetFunc    func(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
	CreateFunc func(ctx context.Context, in casefile.CreateInput) (*domain.Case, error)
	UpdateFunc func(ctx context.Context, caseID uuid.UUID, in casefile.UpdateInput) (*domain.Case, error)

	calls struct {
		List []struct {
			Ctx context.Context
			In  casefile.ListInput
		}
		Get []struct {
			Ctx    context.Context
			CaseID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			In  casefile.CreateInput
		}
		Update []struct {
			Ctx    context.Context
			CaseID uuid.UUID
			In     casefile.UpdateInput
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *caseServiceMock) List(ctx context.Context, in casefile.ListInput) ([]domain.Case, error) {
	if mock.ListFunc == nil {
		panic("caseServiceMock.ListFunc: method is nil but caseService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  casefile.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *caseServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  casefile.ListInput
} {
	var calls []struct {
		Ctx context.Context
		In  casefile.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *caseServiceMock) Get(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	if mock.GetFunc == nil {
		panic("caseServiceMock.GetFunc: method is nil but caseService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}{Ctx: ctx, CaseID: caseID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, caseID)
}

func (mock *caseServiceMock) GetCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *caseServiceMock) Create(ctx context.Context, in casefile.CreateInput) (*domain.Case, error) {
	if mock.CreateFunc == nil {
		panic("caseServiceMock.CreateFunc: method is nil but caseService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  casefile.CreateInput
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *caseServiceMock) CreateCalls() []struct {
	Ctx context.Context
	In  casefile.CreateInput
} {
	var calls []struct {
		Ctx context.Context
		In  casefile.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *caseServiceMock) Update(ctx context.Context, caseID uuid.UUID, in casefile.UpdateInput) (*domain.Case, error) {
	if mock.UpdateFunc == nil {
		panic("caseServiceMock.UpdateFunc: method is nil but caseService.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
		In     casefile.UpdateInput
	}{Ctx: ctx, CaseID: caseID, In: in}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, caseID, in)
}

func (mock *caseServiceMock) UpdateCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
	In     casefile.UpdateInput
} {
	var calls []struct {
		Ctx    context.Context
		CaseID uuid.UUID
		In     casefile.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
