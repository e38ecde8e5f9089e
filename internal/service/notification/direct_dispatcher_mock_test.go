package notification

import (
	"context"
	"sync"
)

var _ directDispatcher = &directDispatcherMock{}

type directDispatcherMock struct {
	DispatchFunc   func(ctx context.Context, req DispatchRequest) Result
	ConfiguredFunc func() bool

	calls struct {
		Dispatch []struct {
			Ctx context.Context
			Req DispatchRequest
		}
		Configured []struct{}
	}
	lockDispatch   sync.RWMutex
	lockConfigured sync.RWMutex
}

func (mock *directDispatcherMock) Dispatch(ctx context.Context, req DispatchRequest) Result {
	if mock.DispatchFunc == nil {
		panic("directDispatcherMock.DispatchFunc: method is nil but directDispatcher.Dispatch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req DispatchRequest
	}{Ctx: ctx, Req: req}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	return mock.DispatchFunc(ctx, req)
}

func (mock *directDispatcherMock) DispatchCalls() []struct {
	Ctx context.Context
	Req DispatchRequest
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}

func (mock *directDispatcherMock) Configured() bool {
	if mock.ConfiguredFunc == nil {
		panic("directDispatcherMock.ConfiguredFunc: method is nil but directDispatcher.Configured was just called")
	}
	mock.lockConfigured.Lock()
	mock.calls.Configured = append(mock.calls.Configured, struct{}{})
	mock.lockConfigured.Unlock()
	return mock.ConfiguredFunc()
}

func (mock *directDispatcherMock) ConfiguredCalls() []struct{} {
	mock.lockConfigured.RLock()
	calls := mock.calls.Configured
	mock.lockConfigured.RUnlock()
	return calls
}
