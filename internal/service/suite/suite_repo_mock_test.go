package suite

import (
	"context"
	"sync"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

var _ suiteRepo = &suiteRepoMock{}

type suiteRepoMock struct {
	CreateFunc  func(ctx context.Context, ownerID int64, s *domain.Suite) (*domain.Suite, error)
	GetByIDFunc func(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error)
	ListFunc    func(ctx context.Context, ownerID int64, skip, limit int) ([]domain.Suite, error)
	UpdateFunc  func(ctx context.Context, ownerID, suiteID int64, params domain.SuiteUpdateParams) (*domain.Suite, error)
	DeleteFunc  func(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID int64
			S       *domain.Suite
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID int64
			SuiteID int64
		}
		List []struct {
			Ctx     context.Context
			OwnerID int64
			Skip    int
			Limit   int
		}
		Update []struct {
			Ctx     context.Context
			OwnerID int64
			SuiteID int64
			Params  domain.SuiteUpdateParams
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID int64
			SuiteID int64
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *suiteRepoMock) Create(ctx context.Context, ownerID int64, s *domain.Suite) (*domain.Suite, error) {
	if mock.CreateFunc == nil {
		panic("suiteRepoMock.CreateFunc: method is nil but suiteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		S       *domain.Suite
	}{Ctx: ctx, OwnerID: ownerID, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, s)
}

func (mock *suiteRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	S       *domain.Suite
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *suiteRepoMock) GetByID(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error) {
	if mock.GetByIDFunc == nil {
		panic("suiteRepoMock.GetByIDFunc: method is nil but suiteRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		SuiteID int64
	}{Ctx: ctx, OwnerID: ownerID, SuiteID: suiteID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, suiteID)
}

func (mock *suiteRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	SuiteID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *suiteRepoMock) List(ctx context.Context, ownerID int64, skip, limit int) ([]domain.Suite, error) {
	if mock.ListFunc == nil {
		panic("suiteRepoMock.ListFunc: method is nil but suiteRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		Skip    int
		Limit   int
	}{Ctx: ctx, OwnerID: ownerID, Skip: skip, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, skip, limit)
}

func (mock *suiteRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	Skip    int
	Limit   int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *suiteRepoMock) Update(ctx context.Context, ownerID, suiteID int64, params domain.SuiteUpdateParams) (*domain.Suite, error) {
	if mock.UpdateFunc == nil {
		panic("suiteRepoMock.UpdateFunc: method is nil but suiteRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		SuiteID int64
		Params  domain.SuiteUpdateParams
	}{Ctx: ctx, OwnerID: ownerID, SuiteID: suiteID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, suiteID, params)
}

func (mock *suiteRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	SuiteID int64
	Params  domain.SuiteUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *suiteRepoMock) Delete(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error) {
	if mock.DeleteFunc == nil {
		panic("suiteRepoMock.DeleteFunc: method is nil but suiteRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		SuiteID int64
	}{Ctx: ctx, OwnerID: ownerID, SuiteID: suiteID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, suiteID)
}

func (mock *suiteRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	SuiteID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
