package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

var _ eventGate = &eventGateMock{}

type eventGateMock struct {
	ShouldNotifyFunc func(ctx context.Context, userID uuid.UUID, event domain.EventType) bool

	calls struct {
		ShouldNotify []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Event  domain.EventType
		}
	}
	lockShouldNotify sync.RWMutex
}

func (mock *eventGateMock) ShouldNotify(ctx context.Context, userID uuid.UUID, event domain.EventType) bool {
	if mock.ShouldNotifyFunc == nil {
		panic("eventGateMock.ShouldNotifyFunc: method is nil but eventGate.ShouldNotify was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Event  domain.EventType
	}{Ctx: ctx, UserID: userID, Event: event}
	mock.lockShouldNotify.Lock()
	mock.calls.ShouldNotify = append(mock.calls.ShouldNotify, callInfo)
	mock.lockShouldNotify.Unlock()
	return mock.ShouldNotifyFunc(ctx, userID, event)
}

func (mock *eventGateMock) ShouldNotifyCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Event  domain.EventType
} {
	mock.lockShouldNotify.RLock()
	calls := mock.calls.ShouldNotify
	mock.lockShouldNotify.RUnlock()
	return calls
}
