// Package testcase implements test-case management.
//
// Cases have no owner column of their own; access goes through the parent
// suite. Every operation first resolves the case's suite scoped to the
// caller, so a case under somebody else's suite is reported as not found.
package testcase

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

type caseRepo interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	GetByID(ctx context.Context, caseID int64) (*domain.Case, error)
	ListBySuite(ctx context.Context, suiteID int64, skip, limit int) ([]domain.Case, error)
	Update(ctx context.Context, caseID int64, params domain.CaseUpdateParams) (*domain.Case, error)
	Delete(ctx context.Context, caseID int64) (*domain.Case, error)
}

// suiteAccess resolves a suite scoped to its owner. ErrNotFound covers both
// absence and foreign ownership.
type suiteAccess interface {
	GetByID(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides test-case management operations.
type Service struct {
	cases  caseRepo
	suites suiteAccess
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new test-case service.
func NewService(log *slog.Logger, cases caseRepo, suites suiteAccess, tx txManager) *Service {
	return &Service{
		cases:  cases,
		suites: suites,
		tx:     tx,
		log:    log.With("service", "testcase"),
	}
}

// authorizeCase loads a case and verifies the caller owns its suite.
// Both a missing case and a foreign one come back as ErrNotFound.
func (s *Service) authorizeCase(ctx context.Context, userID, caseID int64) (*domain.Case, error) {
	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if _, err := s.suites.GetByID(ctx, userID, c.SuiteID); err != nil {
		return nil, err
	}
	return c, nil
}
