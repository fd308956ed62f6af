package session

import (
	"github.com/heartmarshall/precinct-records/internal/domain"
	"sync"
)

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	ValidateAccessTokenFunc func(token string) (domain.Identity, error)

	calls struct {
		ValidateAccessToken []struct{ Token string }
	}
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenVerifierMock) ValidateAccessToken(token string) (domain.Identity, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenVerifierMock.ValidateAccessTokenFunc: method is nil but tokenVerifier.ValidateAccessToken was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenVerifierMock) ValidateAccessTokenCalls() []struct{ Token string } {
	var calls []struct{ Token string }
	mock.lockValidateAccessToken.RLock()
	calls = mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
