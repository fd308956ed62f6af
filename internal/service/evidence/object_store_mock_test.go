package evidence

import (
	"context"
	"io"
	"sync"
)

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	UploadFunc    func(ctx context.Context, bearer string, path string, contentType string, size int64, r io.Reader) error
	PublicURLFunc func(path string) string

	calls struct {
		Upload []struct {
			Ctx         context.Context
			Bearer      string
			Path        string
			ContentType string
			Size        int64
			R           io.Reader
		}
		PublicURL []struct{ Path string }
	}
	lockUpload    sync.RWMutex
	lockPublicURL sync.RWMutex
}

func (mock *objectStoreMock) Upload(ctx context.Context, bearer string, path string, contentType string, size int64, r io.Reader) error {
	if mock.UploadFunc == nil {
		panic("objectStoreMock.UploadFunc: method is nil but objectStore.Upload was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Bearer      string
		Path        string
		ContentType string
		Size        int64
		R           io.Reader
	}{Ctx: ctx, Bearer: bearer, Path: path, ContentType: contentType, Size: size, R: r}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, bearer, path, contentType, size, r)
}

func (mock *objectStoreMock) UploadCalls() []struct {
	Ctx         context.Context
	Bearer      string
	Path        string
	ContentType string
	Size        int64
	R           io.Reader
} {
	var calls []struct {
		Ctx         context.Context
		Bearer      string
		Path        string
		ContentType string
		Size        int64
		R           io.Reader
	}
	mock.lockUpload.RLock()
	calls = mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *objectStoreMock) PublicURL(path string) string {
	if mock.PublicURLFunc == nil {
		panic("objectStoreMock.PublicURLFunc: method is nil but objectStore.PublicURL was just called")
	}
	callInfo := struct{ Path string }{Path: path}
	mock.lockPublicURL.Lock()
	mock.calls.PublicURL = append(mock.calls.PublicURL, callInfo)
	mock.lockPublicURL.Unlock()
	return mock.PublicURLFunc(path)
}

func (mock *objectStoreMock) PublicURLCalls() []struct{ Path string } {
	var calls []struct{ Path string }
	mock.lockPublicURL.RLock()
	calls = mock.calls.PublicURL
	mock.lockPublicURL.RUnlock()
	return calls
}
