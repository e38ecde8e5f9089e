package activity

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

var _ ScanStore = &ScanStoreMock{}

type ScanStoreMock struct {
	ListActiveByOwnerFunc func(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID) ([]domain.Activity, error)

	calls struct {
		ListActiveByOwner []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			ExcludeID *uuid.UUID
		}
	}
	lockListActiveByOwner sync.RWMutex
}

func (mock *ScanStoreMock) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID) ([]domain.Activity, error) {
	if mock.ListActiveByOwnerFunc == nil {
		panic("ScanStoreMock.ListActiveByOwnerFunc: method is nil but ScanStore.ListActiveByOwner was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ExcludeID *uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ExcludeID: excludeID}
	mock.lockListActiveByOwner.Lock()
	mock.calls.ListActiveByOwner = append(mock.calls.ListActiveByOwner, callInfo)
	mock.lockListActiveByOwner.Unlock()
	return mock.ListActiveByOwnerFunc(ctx, ownerID, excludeID)
}

func (mock *ScanStoreMock) ListActiveByOwnerCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	ExcludeID *uuid.UUID
} {
	mock.lockListActiveByOwner.RLock()
	calls := mock.calls.ListActiveByOwner
	mock.lockListActiveByOwner.RUnlock()
	return calls
}
