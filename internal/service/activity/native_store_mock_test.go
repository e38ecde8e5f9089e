package activity

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

var _ NativeStore = &NativeStoreMock{}

type NativeStoreMock struct {
	FindActiveByTitleAreaFunc         func(ctx context.Context, ownerID uuid.UUID, title string, area string, excludeID *uuid.UUID) (*domain.Activity, error)
	SupportsCaseInsensitiveLookupFunc func() bool

	calls struct {
		FindActiveByTitleArea []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			Title     string
			Area      string
			ExcludeID *uuid.UUID
		}
		SupportsCaseInsensitiveLookup []struct{}
	}
	lockFindActiveByTitleArea         sync.RWMutex
	lockSupportsCaseInsensitiveLookup sync.RWMutex
}

func (mock *NativeStoreMock) FindActiveByTitleArea(ctx context.Context, ownerID uuid.UUID, title string, area string, excludeID *uuid.UUID) (*domain.Activity, error) {
	if mock.FindActiveByTitleAreaFunc == nil {
		panic("NativeStoreMock.FindActiveByTitleAreaFunc: method is nil but NativeStore.FindActiveByTitleArea was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		Title     string
		Area      string
		ExcludeID *uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Title: title, Area: area, ExcludeID: excludeID}
	mock.lockFindActiveByTitleArea.Lock()
	mock.calls.FindActiveByTitleArea = append(mock.calls.FindActiveByTitleArea, callInfo)
	mock.lockFindActiveByTitleArea.Unlock()
	return mock.FindActiveByTitleAreaFunc(ctx, ownerID, title, area, excludeID)
}

func (mock *NativeStoreMock) FindActiveByTitleAreaCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	Title     string
	Area      string
	ExcludeID *uuid.UUID
} {
	mock.lockFindActiveByTitleArea.RLock()
	calls := mock.calls.FindActiveByTitleArea
	mock.lockFindActiveByTitleArea.RUnlock()
	return calls
}

func (mock *NativeStoreMock) SupportsCaseInsensitiveLookup() bool {
	if mock.SupportsCaseInsensitiveLookupFunc == nil {
		panic("NativeStoreMock.SupportsCaseInsensitiveLookupFunc: method is nil but NativeStore.SupportsCaseInsensitiveLookup was just called")
	}
	mock.lockSupportsCaseInsensitiveLookup.Lock()
	mock.calls.SupportsCaseInsensitiveLookup = append(mock.calls.SupportsCaseInsensitiveLookup, struct{}{})
	mock.lockSupportsCaseInsensitiveLookup.Unlock()
	return mock.SupportsCaseInsensitiveLookupFunc()
}

func (mock *NativeStoreMock) SupportsCaseInsensitiveLookupCalls() []struct{} {
	mock.lockSupportsCaseInsensitiveLookup.RLock()
	calls := mock.calls.SupportsCaseInsensitiveLookup
	mock.lockSupportsCaseInsensitiveLookup.RUnlock()
	return calls
}
