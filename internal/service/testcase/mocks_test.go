package testcase

import (
	"context"
	"sync"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

var _ caseRepo = &caseRepoMock{}

type caseRepoMock struct {
	CreateFunc      func(ctx context.Context, c *domain.Case) (*domain.Case, error)
	GetByIDFunc     func(ctx context.Context, caseID int64) (*domain.Case, error)
	ListBySuiteFunc func(ctx context.Context, suiteID int64, skip, limit int) ([]domain.Case, error)
	UpdateFunc      func(ctx context.Context, caseID int64, params domain.CaseUpdateParams) (*domain.Case, error)
	DeleteFunc      func(ctx context.Context, caseID int64) (*domain.Case, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Case
		}
		GetByID []struct {
			Ctx    context.Context
			CaseID int64
		}
		ListBySuite []struct {
			Ctx     context.Context
			SuiteID int64
			Skip    int
			Limit   int
		}
		Update []struct {
			Ctx    context.Context
			CaseID int64
			Params domain.CaseUpdateParams
		}
		Delete []struct {
			Ctx    context.Context
			CaseID int64
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListBySuite sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *caseRepoMock) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	if mock.CreateFunc == nil {
		panic("caseRepoMock.CreateFunc: method is nil but caseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Case
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *caseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Case
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *caseRepoMock) GetByID(ctx context.Context, caseID int64) (*domain.Case, error) {
	if mock.GetByIDFunc == nil {
		panic("caseRepoMock.GetByIDFunc: method is nil but caseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID int64
	}{Ctx: ctx, CaseID: caseID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, caseID)
}

func (mock *caseRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	CaseID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *caseRepoMock) ListBySuite(ctx context.Context, suiteID int64, skip, limit int) ([]domain.Case, error) {
	if mock.ListBySuiteFunc == nil {
		panic("caseRepoMock.ListBySuiteFunc: method is nil but caseRepo.ListBySuite was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		SuiteID int64
		Skip    int
		Limit   int
	}{Ctx: ctx, SuiteID: suiteID, Skip: skip, Limit: limit}
	mock.lockListBySuite.Lock()
	mock.calls.ListBySuite = append(mock.calls.ListBySuite, callInfo)
	mock.lockListBySuite.Unlock()
	return mock.ListBySuiteFunc(ctx, suiteID, skip, limit)
}

func (mock *caseRepoMock) ListBySuiteCalls() []struct {
	Ctx     context.Context
	SuiteID int64
	Skip    int
	Limit   int
} {
	mock.lockListBySuite.RLock()
	calls := mock.calls.ListBySuite
	mock.lockListBySuite.RUnlock()
	return calls
}

func (mock *caseRepoMock) Update(ctx context.Context, caseID int64, params domain.CaseUpdateParams) (*domain.Case, error) {
	if mock.UpdateFunc == nil {
		panic("caseRepoMock.UpdateFunc: method is nil but caseRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID int64
		Params domain.CaseUpdateParams
	}{Ctx: ctx, CaseID: caseID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, caseID, params)
}

func (mock *caseRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	CaseID int64
	Params domain.CaseUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *caseRepoMock) Delete(ctx context.Context, caseID int64) (*domain.Case, error) {
	if mock.DeleteFunc == nil {
		panic("caseRepoMock.DeleteFunc: method is nil but caseRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID int64
	}{Ctx: ctx, CaseID: caseID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, caseID)
}

func (mock *caseRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	CaseID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ suiteAccess = &suiteAccessMock{}

type suiteAccessMock struct {
	GetByIDFunc func(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			OwnerID int64
			SuiteID int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *suiteAccessMock) GetByID(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error) {
	if mock.GetByIDFunc == nil {
		panic("suiteAccessMock.GetByIDFunc: method is nil but suiteAccess.GetByID was just called")
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

func (mock *suiteAccessMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	SuiteID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly, without a real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
