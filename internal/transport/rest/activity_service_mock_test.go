package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/activity"
)

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	CreateActivityFunc func(ctx context.Context, input activity.CreateActivityInput) (*domain.Activity, error)
	UpdateActivityFunc func(ctx context.Context, input activity.UpdateActivityInput) (*domain.Activity, error)
	DeleteActivityFunc func(ctx context.Context, id uuid.UUID) error
	GetActivityFunc    func(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Activity, error)
	ListActivitiesFunc func(ctx context.Context, input activity.ListInput) ([]domain.Activity, error)
	BulkCreateFunc     func(ctx context.Context, items []activity.CreateActivityInput) (*activity.BulkResult, error)

	calls struct {
		CreateActivity []struct {
			Ctx   context.Context
			Input activity.CreateActivityInput
		}
		UpdateActivity []struct {
			Ctx   context.Context
			Input activity.UpdateActivityInput
		}
		DeleteActivity []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetActivity []struct {
			Ctx            context.Context
			ID             uuid.UUID
			IncludeDeleted bool
		}
		ListActivities []struct {
			Ctx   context.Context
			Input activity.ListInput
		}
		BulkCreate []struct {
			Ctx   context.Context
			Items []activity.CreateActivityInput
		}
	}
	lockCreateActivity sync.RWMutex
	lockUpdateActivity sync.RWMutex
	lockDeleteActivity sync.RWMutex
	lockGetActivity    sync.RWMutex
	lockListActivities sync.RWMutex
	lockBulkCreate     sync.RWMutex
}

func (mock *activityServiceMock) CreateActivity(ctx context.Context, input activity.CreateActivityInput) (*domain.Activity, error) {
	if mock.CreateActivityFunc == nil {
		panic("activityServiceMock.CreateActivityFunc: method is nil but activityService.CreateActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.CreateActivityInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateActivity.Lock()
	mock.calls.CreateActivity = append(mock.calls.CreateActivity, callInfo)
	mock.lockCreateActivity.Unlock()
	return mock.CreateActivityFunc(ctx, input)
}

func (mock *activityServiceMock) CreateActivityCalls() []struct {
	Ctx   context.Context
	Input activity.CreateActivityInput
} {
	mock.lockCreateActivity.RLock()
	calls := mock.calls.CreateActivity
	mock.lockCreateActivity.RUnlock()
	return calls
}

func (mock *activityServiceMock) UpdateActivity(ctx context.Context, input activity.UpdateActivityInput) (*domain.Activity, error) {
	if mock.UpdateActivityFunc == nil {
		panic("activityServiceMock.UpdateActivityFunc: method is nil but activityService.UpdateActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.UpdateActivityInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateActivity.Lock()
	mock.calls.UpdateActivity = append(mock.calls.UpdateActivity, callInfo)
	mock.lockUpdateActivity.Unlock()
	return mock.UpdateActivityFunc(ctx, input)
}

func (mock *activityServiceMock) UpdateActivityCalls() []struct {
	Ctx   context.Context
	Input activity.UpdateActivityInput
} {
	mock.lockUpdateActivity.RLock()
	calls := mock.calls.UpdateActivity
	mock.lockUpdateActivity.RUnlock()
	return calls
}

func (mock *activityServiceMock) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteActivityFunc == nil {
		panic("activityServiceMock.DeleteActivityFunc: method is nil but activityService.DeleteActivity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteActivity.Lock()
	mock.calls.DeleteActivity = append(mock.calls.DeleteActivity, callInfo)
	mock.lockDeleteActivity.Unlock()
	return mock.DeleteActivityFunc(ctx, id)
}

func (mock *activityServiceMock) DeleteActivityCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteActivity.RLock()
	calls := mock.calls.DeleteActivity
	mock.lockDeleteActivity.RUnlock()
	return calls
}

func (mock *activityServiceMock) GetActivity(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Activity, error) {
	if mock.GetActivityFunc == nil {
		panic("activityServiceMock.GetActivityFunc: method is nil but activityService.GetActivity was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ID             uuid.UUID
		IncludeDeleted bool
	}{Ctx: ctx, ID: id, IncludeDeleted: includeDeleted}
	mock.lockGetActivity.Lock()
	mock.calls.GetActivity = append(mock.calls.GetActivity, callInfo)
	mock.lockGetActivity.Unlock()
	return mock.GetActivityFunc(ctx, id, includeDeleted)
}

func (mock *activityServiceMock) GetActivityCalls() []struct {
	Ctx            context.Context
	ID             uuid.UUID
	IncludeDeleted bool
} {
	mock.lockGetActivity.RLock()
	calls := mock.calls.GetActivity
	mock.lockGetActivity.RUnlock()
	return calls
}

func (mock *activityServiceMock) ListActivities(ctx context.Context, input activity.ListInput) ([]domain.Activity, error) {
	if mock.ListActivitiesFunc == nil {
		panic("activityServiceMock.ListActivitiesFunc: method is nil but activityService.ListActivities was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListActivities.Lock()
	mock.calls.ListActivities = append(mock.calls.ListActivities, callInfo)
	mock.lockListActivities.Unlock()
	return mock.ListActivitiesFunc(ctx, input)
}

func (mock *activityServiceMock) ListActivitiesCalls() []struct {
	Ctx   context.Context
	Input activity.ListInput
} {
	mock.lockListActivities.RLock()
	calls := mock.calls.ListActivities
	mock.lockListActivities.RUnlock()
	return calls
}

func (mock *activityServiceMock) BulkCreate(ctx context.Context, items []activity.CreateActivityInput) (*activity.BulkResult, error) {
	if mock.BulkCreateFunc == nil {
		panic("activityServiceMock.BulkCreateFunc: method is nil but activityService.BulkCreate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []activity.CreateActivityInput
	}{Ctx: ctx, Items: items}
	mock.lockBulkCreate.Lock()
	mock.calls.BulkCreate = append(mock.calls.BulkCreate, callInfo)
	mock.lockBulkCreate.Unlock()
	return mock.BulkCreateFunc(ctx, items)
}

func (mock *activityServiceMock) BulkCreateCalls() []struct {
	Ctx   context.Context
	Items []activity.CreateActivityInput
} {
	mock.lockBulkCreate.RLock()
	calls := mock.calls.BulkCreate
	mock.lockBulkCreate.RUnlock()
	return calls
}
