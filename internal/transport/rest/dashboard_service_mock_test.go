package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	StatsFunc func(ctx context.Context, allUsers bool) (*domain.ActivityStats, error)

	calls struct {
		Stats []struct {
			Ctx      context.Context
			AllUsers bool
		}
	}
	lockStats sync.RWMutex
}

func (mock *dashboardServiceMock) Stats(ctx context.Context, allUsers bool) (*domain.ActivityStats, error) {
	if mock.StatsFunc == nil {
		panic("dashboardServiceMock.StatsFunc: method is nil but dashboardService.Stats was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AllUsers bool
	}{Ctx: ctx, AllUsers: allUsers}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, allUsers)
}

func (mock *dashboardServiceMock) StatsCalls() []struct {
	Ctx      context.Context
	AllUsers bool
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
