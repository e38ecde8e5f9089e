package rest

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/planner-backend/internal/service/importer"
)

var _ importService = &importServiceMock{}

type importServiceMock struct {
	ImportInitialFunc func(ctx context.Context, confirm bool) (*importer.InitialResult, error)
	ExportFunc        func(ctx context.Context, w io.Writer, f importer.ExportFilter) (int, error)

	calls struct {
		ImportInitial []struct {
			Ctx     context.Context
			Confirm bool
		}
		Export []struct {
			Ctx context.Context
			W   io.Writer
			F   importer.ExportFilter
		}
	}
	lockImportInitial sync.RWMutex
	lockExport        sync.RWMutex
}

func (mock *importServiceMock) ImportInitial(ctx context.Context, confirm bool) (*importer.InitialResult, error) {
	if mock.ImportInitialFunc == nil {
		panic("importServiceMock.ImportInitialFunc: method is nil but importService.ImportInitial was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Confirm bool
	}{Ctx: ctx, Confirm: confirm}
	mock.lockImportInitial.Lock()
	mock.calls.ImportInitial = append(mock.calls.ImportInitial, callInfo)
	mock.lockImportInitial.Unlock()
	return mock.ImportInitialFunc(ctx, confirm)
}

func (mock *importServiceMock) ImportInitialCalls() []struct {
	Ctx     context.Context
	Confirm bool
} {
	mock.lockImportInitial.RLock()
	calls := mock.calls.ImportInitial
	mock.lockImportInitial.RUnlock()
	return calls
}

func (mock *importServiceMock) Export(ctx context.Context, w io.Writer, f importer.ExportFilter) (int, error) {
	if mock.ExportFunc == nil {
		panic("importServiceMock.ExportFunc: method is nil but importService.Export was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   io.Writer
		F   importer.ExportFilter
	}{Ctx: ctx, W: w, F: f}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, w, f)
}

func (mock *importServiceMock) ExportCalls() []struct {
	Ctx context.Context
	W   io.Writer
	F   importer.ExportFilter
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}
