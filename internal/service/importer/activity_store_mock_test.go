package importer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

var _ activityStore = &activityStoreMock{}

type activityStoreMock struct {
	CountAllFunc             func(ctx context.Context) (int, error)
	SoftDeleteAllByOwnerFunc func(ctx context.Context, ownerID uuid.UUID, at time.Time) (int, error)
	BulkInsertFunc           func(ctx context.Context, items []domain.Activity) (int, error)
	ListFunc                 func(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)

	calls struct {
		CountAll []struct {
			Ctx context.Context
		}
		SoftDeleteAllByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			At      time.Time
		}
		BulkInsert []struct {
			Ctx   context.Context
			Items []domain.Activity
		}
		List []struct {
			Ctx context.Context
			F   domain.ActivityFilter
		}
	}
	lockCountAll             sync.RWMutex
	lockSoftDeleteAllByOwner sync.RWMutex
	lockBulkInsert           sync.RWMutex
	lockList                 sync.RWMutex
}

func (mock *activityStoreMock) CountAll(ctx context.Context) (int, error) {
	if mock.CountAllFunc == nil {
		panic("activityStoreMock.CountAllFunc: method is nil but activityStore.CountAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountAll.Lock()
	mock.calls.CountAll = append(mock.calls.CountAll, callInfo)
	mock.lockCountAll.Unlock()
	return mock.CountAllFunc(ctx)
}

func (mock *activityStoreMock) CountAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountAll.RLock()
	calls := mock.calls.CountAll
	mock.lockCountAll.RUnlock()
	return calls
}

func (mock *activityStoreMock) SoftDeleteAllByOwner(ctx context.Context, ownerID uuid.UUID, at time.Time) (int, error) {
	if mock.SoftDeleteAllByOwnerFunc == nil {
		panic("activityStoreMock.SoftDeleteAllByOwnerFunc: method is nil but activityStore.SoftDeleteAllByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		At      time.Time
	}{Ctx: ctx, OwnerID: ownerID, At: at}
	mock.lockSoftDeleteAllByOwner.Lock()
	mock.calls.SoftDeleteAllByOwner = append(mock.calls.SoftDeleteAllByOwner, callInfo)
	mock.lockSoftDeleteAllByOwner.Unlock()
	return mock.SoftDeleteAllByOwnerFunc(ctx, ownerID, at)
}

func (mock *activityStoreMock) SoftDeleteAllByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	At      time.Time
} {
	mock.lockSoftDeleteAllByOwner.RLock()
	calls := mock.calls.SoftDeleteAllByOwner
	mock.lockSoftDeleteAllByOwner.RUnlock()
	return calls
}

func (mock *activityStoreMock) BulkInsert(ctx context.Context, items []domain.Activity) (int, error) {
	if mock.BulkInsertFunc == nil {
		panic("activityStoreMock.BulkInsertFunc: method is nil but activityStore.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []domain.Activity
	}{Ctx: ctx, Items: items}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, items)
}

func (mock *activityStoreMock) BulkInsertCalls() []struct {
	Ctx   context.Context
	Items []domain.Activity
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}

func (mock *activityStoreMock) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	if mock.ListFunc == nil {
		panic("activityStoreMock.ListFunc: method is nil but activityStore.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ActivityFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *activityStoreMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ActivityFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
