package middleware

import (
	"context"
	"sync"
)

var _ authenticator = &authenticatorMock{}

type authenticatorMock struct {
	AuthenticateFunc func(ctx context.Context, service string, scope string, credential string) int

	calls struct {
		Authenticate []struct {
			Ctx        context.Context
			Service    string
			Scope      string
			Credential string
		}
	}
	lockAuthenticate sync.RWMutex
}

func (mock *authenticatorMock) Authenticate(ctx context.Context, service string, scope string, credential string) int {
	if mock.AuthenticateFunc == nil {
		panic("authenticatorMock.AuthenticateFunc: method is nil but authenticator.Authenticate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Service    string
		Scope      string
		Credential string
	}{Ctx: ctx, Service: service, Scope: scope, Credential: credential}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, service, scope, credential)
}

func (mock *authenticatorMock) AuthenticateCalls() []struct {
	Ctx        context.Context
	Service    string
	Scope      string
	Credential string
} {
	mock.lockAuthenticate.RLock()
	calls := mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}
