package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

var _ preferenceStore = &preferenceStoreMock{}

type preferenceStoreMock struct {
	GetByUserFunc      func(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error)
	CreateDefaultsFunc func(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error)

	calls struct {
		GetByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CreateDefaults []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByUser      sync.RWMutex
	lockCreateDefaults sync.RWMutex
}

func (mock *preferenceStoreMock) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error) {
	if mock.GetByUserFunc == nil {
		panic("preferenceStoreMock.GetByUserFunc: method is nil but preferenceStore.GetByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUser.Lock()
	mock.calls.GetByUser = append(mock.calls.GetByUser, callInfo)
	mock.lockGetByUser.Unlock()
	return mock.GetByUserFunc(ctx, userID)
}

func (mock *preferenceStoreMock) GetByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUser.RLock()
	calls := mock.calls.GetByUser
	mock.lockGetByUser.RUnlock()
	return calls
}

func (mock *preferenceStoreMock) CreateDefaults(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error) {
	if mock.CreateDefaultsFunc == nil {
		panic("preferenceStoreMock.CreateDefaultsFunc: method is nil but preferenceStore.CreateDefaults was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCreateDefaults.Lock()
	mock.calls.CreateDefaults = append(mock.calls.CreateDefaults, callInfo)
	mock.lockCreateDefaults.Unlock()
	return mock.CreateDefaultsFunc(ctx, userID)
}

func (mock *preferenceStoreMock) CreateDefaultsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCreateDefaults.RLock()
	calls := mock.calls.CreateDefaults
	mock.lockCreateDefaults.RUnlock()
	return calls
}
