package comment

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

var _ activityReader = &activityReaderMock{}

type activityReaderMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Activity, error)

	calls struct {
		GetByID []struct {
			Ctx            context.Context
			ID             uuid.UUID
			IncludeDeleted bool
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *activityReaderMock) GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Activity, error) {
	if mock.GetByIDFunc == nil {
		panic("activityReaderMock.GetByIDFunc: method is nil but activityReader.GetByID was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ID             uuid.UUID
		IncludeDeleted bool
	}{Ctx: ctx, ID: id, IncludeDeleted: includeDeleted}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id, includeDeleted)
}

func (mock *activityReaderMock) GetByIDCalls() []struct {
	Ctx            context.Context
	ID             uuid.UUID
	IncludeDeleted bool
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
