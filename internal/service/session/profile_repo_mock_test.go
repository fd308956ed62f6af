package session

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc func(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error)

	calls struct {
		GetByID []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
