package run

import (
	"context"
	"sync"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

var _ runRepo = &runRepoMock{}

type runRepoMock struct {
	CreateFunc  func(ctx context.Context, run *domain.Run) (*domain.Run, error)
	GetByIDFunc func(ctx context.Context, runID int64) (*domain.Run, error)
	ListFunc    func(ctx context.Context, skip, limit int) ([]domain.Run, error)
	UpdateFunc  func(ctx context.Context, runID int64, params domain.RunUpdateParams) (*domain.Run, error)
	DeleteFunc  func(ctx context.Context, runID int64) (*domain.Run, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Run *domain.Run
		}
		GetByID []struct {
			Ctx   context.Context
			RunID int64
		}
		List []struct {
			Ctx   context.Context
			Skip  int
			Limit int
		}
		Update []struct {
			Ctx    context.Context
			RunID  int64
			Params domain.RunUpdateParams
		}
		Delete []struct {
			Ctx   context.Context
			RunID int64
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *runRepoMock) Create(ctx context.Context, run *domain.Run) (*domain.Run, error) {
	if mock.CreateFunc == nil {
		panic("runRepoMock.CreateFunc: method is nil but runRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Run *domain.Run
	}{Ctx: ctx, Run: run}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, run)
}

func (mock *runRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Run *domain.Run
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *runRepoMock) GetByID(ctx context.Context, runID int64) (*domain.Run, error) {
	if mock.GetByIDFunc == nil {
		panic("runRepoMock.GetByIDFunc: method is nil but runRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RunID int64
	}{Ctx: ctx, RunID: runID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, runID)
}

func (mock *runRepoMock) GetByIDCalls() []struct {
	Ctx   context.Context
	RunID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *runRepoMock) List(ctx context.Context, skip, limit int) ([]domain.Run, error) {
	if mock.ListFunc == nil {
		panic("runRepoMock.ListFunc: method is nil but runRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Skip  int
		Limit int
	}{Ctx: ctx, Skip: skip, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, skip, limit)
}

func (mock *runRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Skip  int
	Limit int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *runRepoMock) Update(ctx context.Context, runID int64, params domain.RunUpdateParams) (*domain.Run, error) {
	if mock.UpdateFunc == nil {
		panic("runRepoMock.UpdateFunc: method is nil but runRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RunID  int64
		Params domain.RunUpdateParams
	}{Ctx: ctx, RunID: runID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, runID, params)
}

func (mock *runRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	RunID  int64
	Params domain.RunUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *runRepoMock) Delete(ctx context.Context, runID int64) (*domain.Run, error) {
	if mock.DeleteFunc == nil {
		panic("runRepoMock.DeleteFunc: method is nil but runRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RunID int64
	}{Ctx: ctx, RunID: runID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, runID)
}

func (mock *runRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	RunID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
