package rest

import (
	"context"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/session"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	SignUpFunc  func(ctx context.Context, in session.SignUpInput) (*domain.AuthSession, error)
	SignInFunc  func(ctx context.Context, in session.SignInInput) (*domain.AuthSession, error)
	SignOutFunc func(ctx context.Context, st session.State) error

	calls struct {
		SignUp []struct {
			Ctx context.Context
			In  session.SignUpInput
		}
		SignIn []struct {
			Ctx context.Context
			In  session.SignInInput
		}
		SignOut []struct {
			Ctx context.Context
			St  session.State
		}
	}
	lockSignUp  sync.RWMutex
	lockSignIn  sync.RWMutex
	lockSignOut sync.RWMutex
}

func (mock *authServiceMock) SignUp(ctx context.Context, in session.SignUpInput) (*domain.AuthSession, error) {
	if mock.SignUpFunc == nil {
		panic("authServiceMock.SignUpFunc: method is nil but authService.SignUp was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  session.SignUpInput
	}{Ctx: ctx, In: in}
	mock.lockSignUp.Lock()
	mock.calls.SignUp = append(mock.calls.SignUp, callInfo)
	mock.lockSignUp.Unlock()
	return mock.SignUpFunc(ctx, in)
}

func (mock *authServiceMock) SignUpCalls() []struct {
	Ctx context.Context
	In  session.SignUpInput
} {
	var calls []struct {
		Ctx context.Context
		In  session.SignUpInput
	}
	mock.lockSignUp.RLock()
	calls = mock.calls.SignUp
	mock.lockSignUp.RUnlock()
	return calls
}

func (mock *authServiceMock) SignIn(ctx context.Context, in session.SignInInput) (*domain.AuthSession, error) {
	if mock.SignInFunc == nil {
		panic("authServiceMock.SignInFunc: method is nil but authService.SignIn was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  session.SignInInput
	}{Ctx: ctx, In: in}
	mock.lockSignIn.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, callInfo)
	mock.lockSignIn.Unlock()
	return mock.SignInFunc(ctx, in)
}

func (mock *authServiceMock) SignInCalls() []struct {
	Ctx context.Context
	In  session.SignInInput
} {
	var calls []struct {
		Ctx context.Context
		In  session.SignInInput
	}
	mock.lockSignIn.RLock()
	calls = mock.calls.SignIn
	mock.lockSignIn.RUnlock()
	return calls
}

func (mock *authServiceMock) SignOut(ctx context.Context, st session.State) error {
	if mock.SignOutFunc == nil {
		panic("authServiceMock.SignOutFunc: method is nil but authService.SignOut was just called")
	}
	callInfo := struct {
		Ctx context.Context
		St  session.State
	}{Ctx: ctx, St: st}
	mock.lockSignOut.Lock()
	mock.calls.SignOut = append(mock.calls.SignOut, callInfo)
	mock.lockSignOut.Unlock()
	return mock.SignOutFunc(ctx, st)
}

func (mock *authServiceMock) SignOutCalls() []struct {
	Ctx context.Context
	St  session.State
} {
	var calls []struct {
		Ctx context.Context
		St  session.State
	}
	mock.lockSignOut.RLock()
	calls = mock.calls.SignOut
	mock.lockSignOut.RUnlock()
	return calls
}
