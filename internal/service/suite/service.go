// Package suite implements owner-scoped test-suite management.
//
// Every operation resolves the caller from the request context and scopes
// the query to that owner. A suite owned by another user is reported as
// not found, never as forbidden.
package suite

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

type suiteRepo interface {
	Create(ctx context.Context, ownerID int64, s *domain.Suite) (*domain.Suite, error)
	GetByID(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error)
	List(ctx context.Context, ownerID int64, skip, limit int) ([]domain.Suite, error)
	Update(ctx context.Context, ownerID, suiteID int64, params domain.SuiteUpdateParams) (*domain.Suite, error)
	Delete(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error)
}

// Service provides suite management operations.
type Service struct {
	suites suiteRepo
	log    *slog.Logger
}

// NewService creates a new suite service.
func NewService(log *slog.Logger, suites suiteRepo) *Service {
	return &Service{
		suites: suites,
		log:    log.With("service", "suite"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
