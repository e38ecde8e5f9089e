package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	CountByStatusFunc   func(ctx context.Context, ownerID *uuid.UUID) (map[domain.ActivityStatus]int, error)
	CountByPriorityFunc func(ctx context.Context, ownerID *uuid.UUID) (map[domain.Priority]int, error)
	CountByAreaFunc     func(ctx context.Context, ownerID *uuid.UUID) (map[string]int, error)
	RecentFunc          func(ctx context.Context, ownerID *uuid.UUID, limit int) ([]domain.Activity, error)

	calls struct {
		CountByStatus []struct {
			Ctx     context.Context
			OwnerID *uuid.UUID
		}
		CountByPriority []struct {
			Ctx     context.Context
			OwnerID *uuid.UUID
		}
		CountByArea []struct {
			Ctx     context.Context
			OwnerID *uuid.UUID
		}
		Recent []struct {
			Ctx     context.Context
			OwnerID *uuid.UUID
			Limit   int
		}
	}
	lockCountByStatus   sync.RWMutex
	lockCountByPriority sync.RWMutex
	lockCountByArea     sync.RWMutex
	lockRecent          sync.RWMutex
}

func (mock *statsRepoMock) CountByStatus(ctx context.Context, ownerID *uuid.UUID) (map[domain.ActivityStatus]int, error) {
	if mock.CountByStatusFunc == nil {
		panic("statsRepoMock.CountByStatusFunc: method is nil but statsRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID *uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, ownerID)
}

func (mock *statsRepoMock) CountByStatusCalls() []struct {
	Ctx     context.Context
	OwnerID *uuid.UUID
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountByPriority(ctx context.Context, ownerID *uuid.UUID) (map[domain.Priority]int, error) {
	if mock.CountByPriorityFunc == nil {
		panic("statsRepoMock.CountByPriorityFunc: method is nil but statsRepo.CountByPriority was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID *uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountByPriority.Lock()
	mock.calls.CountByPriority = append(mock.calls.CountByPriority, callInfo)
	mock.lockCountByPriority.Unlock()
	return mock.CountByPriorityFunc(ctx, ownerID)
}

func (mock *statsRepoMock) CountByPriorityCalls() []struct {
	Ctx     context.Context
	OwnerID *uuid.UUID
} {
	mock.lockCountByPriority.RLock()
	calls := mock.calls.CountByPriority
	mock.lockCountByPriority.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountByArea(ctx context.Context, ownerID *uuid.UUID) (map[string]int, error) {
	if mock.CountByAreaFunc == nil {
		panic("statsRepoMock.CountByAreaFunc: method is nil but statsRepo.CountByArea was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID *uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountByArea.Lock()
	mock.calls.CountByArea = append(mock.calls.CountByArea, callInfo)
	mock.lockCountByArea.Unlock()
	return mock.CountByAreaFunc(ctx, ownerID)
}

func (mock *statsRepoMock) CountByAreaCalls() []struct {
	Ctx     context.Context
	OwnerID *uuid.UUID
} {
	mock.lockCountByArea.RLock()
	calls := mock.calls.CountByArea
	mock.lockCountByArea.RUnlock()
	return calls
}

func (mock *statsRepoMock) Recent(ctx context.Context, ownerID *uuid.UUID, limit int) ([]domain.Activity, error) {
	if mock.RecentFunc == nil {
		panic("statsRepoMock.RecentFunc: method is nil but statsRepo.Recent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID *uuid.UUID
		Limit   int
	}{Ctx: ctx, OwnerID: ownerID, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, ownerID, limit)
}

func (mock *statsRepoMock) RecentCalls() []struct {
	Ctx     context.Context
	OwnerID *uuid.UUID
	Limit   int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}
