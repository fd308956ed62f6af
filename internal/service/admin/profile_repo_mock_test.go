package admin

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	ListFunc       func(ctx context.Context) ([]domain.Profile, error)
	GetByIDFunc    func(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error)
	UpdateRoleFunc func(ctx context.Context, profileID uuid.UUID, role domain.Role) (*domain.Profile, error)

	calls struct {
		List    []struct{ Ctx context.Context }
		GetByID []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
		UpdateRole []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
			Role      domain.Role
		}
	}
	lockList       sync.RWMutex
	lockGetByID    sync.RWMutex
	lockUpdateRole sync.RWMutex
}

func (mock *profileRepoMock) List(ctx context.Context) ([]domain.Profile, error) {
	if mock.ListFunc == nil {
		panic("profileRepoMock.ListFunc: method is nil but profileRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *profileRepoMock) ListCalls() []struct{ Ctx context.Context } {
	var calls []struct{ Ctx context.Context }
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByID(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, profileID)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) UpdateRole(ctx context.Context, profileID uuid.UUID, role domain.Role) (*domain.Profile, error) {
	if mock.UpdateRoleFunc == nil {
		panic("profileRepoMock.UpdateRoleFunc: method is nil but profileRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		Role      domain.Role
	}{Ctx: ctx, ProfileID: profileID, Role: role}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, profileID, role)
}

func (mock *profileRepoMock) UpdateRoleCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
	Role      domain.Role
} {
	var calls []struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		Role      domain.Role
	}
	mock.lockUpdateRole.RLock()
	calls = mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}
