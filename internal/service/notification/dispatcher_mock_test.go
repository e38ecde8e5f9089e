package notification

import (
	"context"
	"sync"
)

var _ dispatcher = &dispatcherMock{}

type dispatcherMock struct {
	DispatchFunc func(ctx context.Context, req DispatchRequest) Result

	calls struct {
		Dispatch []struct {
			Ctx context.Context
			Req DispatchRequest
		}
	}
	lockDispatch sync.RWMutex
}

func (mock *dispatcherMock) Dispatch(ctx context.Context, req DispatchRequest) Result {
	if mock.DispatchFunc == nil {
		panic("dispatcherMock.DispatchFunc: method is nil but dispatcher.Dispatch was just called")
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

func (mock *dispatcherMock) DispatchCalls() []struct {
	Ctx context.Context
	Req DispatchRequest
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}
