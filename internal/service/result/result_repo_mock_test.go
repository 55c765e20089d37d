package result

import (
	"context"
	"sync"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	CreateFunc    func(ctx context.Context, res *domain.Result) (*domain.Result, error)
	GetByIDFunc   func(ctx context.Context, resultID int64) (*domain.Result, error)
	ListByRunFunc func(ctx context.Context, runID int64, skip, limit int) ([]domain.Result, error)
	UpdateFunc    func(ctx context.Context, resultID int64, params domain.ResultUpdateParams) (*domain.Result, error)
	DeleteFunc    func(ctx context.Context, resultID int64) (*domain.Result, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Res *domain.Result
		}
		GetByID []struct {
			Ctx      context.Context
			ResultID int64
		}
		ListByRun []struct {
			Ctx   context.Context
			RunID int64
			Skip  int
			Limit int
		}
		Update []struct {
			Ctx      context.Context
			ResultID int64
			Params   domain.ResultUpdateParams
		}
		Delete []struct {
			Ctx      context.Context
			ResultID int64
		}
	}
	lockCreate    sync.RWMutex
	lockGetByID   sync.RWMutex
	lockListByRun sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *resultRepoMock) Create(ctx context.Context, res *domain.Result) (*domain.Result, error) {
	if mock.CreateFunc == nil {
		panic("resultRepoMock.CreateFunc: method is nil but resultRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Res *domain.Result
	}{Ctx: ctx, Res: res}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, res)
}

func (mock *resultRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Res *domain.Result
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *resultRepoMock) GetByID(ctx context.Context, resultID int64) (*domain.Result, error) {
	if mock.GetByIDFunc == nil {
		panic("resultRepoMock.GetByIDFunc: method is nil but resultRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ResultID int64
	}{Ctx: ctx, ResultID: resultID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, resultID)
}

func (mock *resultRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	ResultID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *resultRepoMock) ListByRun(ctx context.Context, runID int64, skip, limit int) ([]domain.Result, error) {
	if mock.ListByRunFunc == nil {
		panic("resultRepoMock.ListByRunFunc: method is nil but resultRepo.ListByRun was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RunID int64
		Skip  int
		Limit int
	}{Ctx: ctx, RunID: runID, Skip: skip, Limit: limit}
	mock.lockListByRun.Lock()
	mock.calls.ListByRun = append(mock.calls.ListByRun, callInfo)
	mock.lockListByRun.Unlock()
	return mock.ListByRunFunc(ctx, runID, skip, limit)
}

func (mock *resultRepoMock) ListByRunCalls() []struct {
	Ctx   context.Context
	RunID int64
	Skip  int
	Limit int
} {
	mock.lockListByRun.RLock()
	calls := mock.calls.ListByRun
	mock.lockListByRun.RUnlock()
	return calls
}

func (mock *resultRepoMock) Update(ctx context.Context, resultID int64, params domain.ResultUpdateParams) (*domain.Result, error) {
	if mock.UpdateFunc == nil {
		panic("resultRepoMock.UpdateFunc: method is nil but resultRepo.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ResultID int64
		Params   domain.ResultUpdateParams
	}{Ctx: ctx, ResultID: resultID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, resultID, params)
}

func (mock *resultRepoMock) UpdateCalls() []struct {
	Ctx      context.Context
	ResultID int64
	Params   domain.ResultUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *resultRepoMock) Delete(ctx context.Context, resultID int64) (*domain.Result, error) {
	if mock.DeleteFunc == nil {
		panic("resultRepoMock.DeleteFunc: method is nil but resultRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ResultID int64
	}{Ctx: ctx, ResultID: resultID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, resultID)
}

func (mock *resultRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	ResultID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
