package casefile

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"sync"
)

var _ caseRepo = &caseRepoMock{}

type caseRepoMock struct {
	ListFunc    func(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error)
	GetByIDFunc func(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
	CreateFunc  func(ctx context.Context, c domain.Case) (*domain.Case, error)
	UpdateFunc  func(ctx context.Context, caseID uuid.UUID, p domain.CaseUpdateParams) (*domain.Case, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.CaseFilter
		}
		GetByID []struct {
			Ctx    context.Context
			CaseID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   domain.Case
		}
		Update []struct {
			Ctx    context.Context
			CaseID uuid.UUID
			P      domain.CaseUpdateParams
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *caseRepoMock) List(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error) {
	if mock.ListFunc == nil {
		panic("caseRepoMock.ListFunc: method is nil but caseRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CaseFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *caseRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.CaseFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.CaseFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *caseRepoMock) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	if mock.GetByIDFunc == nil {
		panic("caseRepoMock.GetByIDFunc: method is nil but caseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}{Ctx: ctx, CaseID: caseID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, caseID)
}

func (mock *caseRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *caseRepoMock) Create(ctx context.Context, c domain.Case) (*domain.Case, error) {
	if mock.CreateFunc == nil {
		panic("caseRepoMock.CreateFunc: method is nil but caseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Case
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *caseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Case
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Case
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *caseRepoMock) Update(ctx context.Context, caseID uuid.UUID, p domain.CaseUpdateParams) (*domain.Case, error) {
	if mock.UpdateFunc == nil {
		panic("caseRepoMock.UpdateFunc: method is nil but caseRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
		P      domain.CaseUpdateParams
	}{Ctx: ctx, CaseID: caseID, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, caseID, p)
}

func (mock *caseRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
	P      domain.CaseUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		CaseID uuid.UUID
		P      domain.CaseUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
