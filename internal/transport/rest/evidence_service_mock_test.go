package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/evidence"
	"sync"
)

var _ evidenceService = &evidenceServiceMock{}

type evidenceServiceMock struct {
	ListFunc           func(ctx context.Context, in evidence.ListInput) ([]domain.Evidence, error)
	GetFunc            func(ctx context.Context, evidenceID uuid.UUID) (*domain.Evidence, error)
	UploadFunc         func(ctx context.Context, in evidence.UploadInput) (*domain.Evidence, error)
	MaxUploadBytesFunc func() int64
	URLFunc            func(e domain.Evidence) string

	calls struct {
		List []struct {
			Ctx context.Context
			In  evidence.ListInput
		}
		Get []struct {
			Ctx        context.Context
			EvidenceID uuid.UUID
		}
		Upload []struct {
			Ctx context.Context
			In  evidence.UploadInput
		}
		MaxUploadBytes []struct{}
		URL            []struct{ E domain.Evidence }
	}
	lockList           sync.RWMutex
	lockGet            sync.RWMutex
	lockUpload         sync.RWMutex
	lockMaxUploadBytes sync.RWMutex
	lockURL            sync.RWMutex
}

func (mock *evidenceServiceMock) List(ctx context.Context, in evidence.ListInput) ([]domain.Evidence, error) {
	if mock.ListFunc == nil {
		panic("evidenceServiceMock.ListFunc: method is nil but evidenceService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  evidence.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *evidenceServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  evidence.ListInput
} {
	var calls []struct {
		Ctx context.Context
		In  evidence.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *evidenceServiceMock) Get(ctx context.Context, evidenceID uuid.UUID) (*domain.Evidence, error) {
	if mock.GetFunc == nil {
		panic("evidenceServiceMock.GetFunc: method is nil but evidenceService.Get was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EvidenceID uuid.UUID
	}{Ctx: ctx, EvidenceID: evidenceID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, evidenceID)
}

func (mock *evidenceServiceMock) GetCalls() []struct {
	Ctx        context.Context
	EvidenceID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		EvidenceID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *evidenceServiceMock) Upload(ctx context.Context, in evidence.UploadInput) (*domain.Evidence, error) {
	if mock.UploadFunc == nil {
		panic("evidenceServiceMock.UploadFunc: method is nil but evidenceService.Upload was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  evidence.UploadInput
	}{Ctx: ctx, In: in}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, in)
}

func (mock *evidenceServiceMock) UploadCalls() []struct {
	Ctx context.Context
	In  evidence.UploadInput
} {
	var calls []struct {
		Ctx context.Context
		In  evidence.UploadInput
	}
	mock.lockUpload.RLock()
	calls = mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *evidenceServiceMock) MaxUploadBytes() int64 {
	if mock.MaxUploadBytesFunc == nil {
		panic("evidenceServiceMock.MaxUploadBytesFunc: method is nil but evidenceService.MaxUploadBytes was just called")
	}
	mock.lockMaxUploadBytes.Lock()
	mock.calls.MaxUploadBytes = append(mock.calls.MaxUploadBytes, struct{}{})
	mock.lockMaxUploadBytes.Unlock()
	return mock.MaxUploadBytesFunc()
}

func (mock *evidenceServiceMock) MaxUploadBytesCalls() []struct{} {
	var calls []struct{}
	mock.lockMaxUploadBytes.RLock()
	calls = mock.calls.MaxUploadBytes
	mock.lockMaxUploadBytes.RUnlock()
	return calls
}

func (mock *evidenceServiceMock) URL(e domain.Evidence) string {
	if mock.URLFunc == nil {
		panic("evidenceServiceMock.URLFunc: method is nil but evidenceService.URL was just called")
	}
	callInfo := struct{ E domain.Evidence }{E: e}
	mock.lockURL.Lock()
	mock.calls.URL = append(mock.calls.URL, callInfo)
	mock.lockURL.Unlock()
	return mock.URLFunc(e)
}

func (mock *evidenceServiceMock) URLCalls() []struct{ E domain.Evidence } {
	var calls []struct{ E domain.Evidence }
	mock.lockURL.RLock()
	calls = mock.calls.URL
	mock.lockURL.RUnlock()
	return calls
}
