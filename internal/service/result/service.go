// Package result implements test-result management.
//
// Like runs, results carry no ownership scoping; any authenticated user
// may record and read them.
package result

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

type resultRepo interface {
	Create(ctx context.Context, res *domain.Result) (*domain.Result, error)
	GetByID(ctx context.Context, resultID int64) (*domain.Result, error)
	ListByRun(ctx context.Context, runID int64, skip, limit int) ([]domain.Result, error)
	Update(ctx context.Context, resultID int64, params domain.ResultUpdateParams) (*domain.Result, error)
	Delete(ctx context.Context, resultID int64) (*domain.Result, error)
}

// Service provides test-result management operations.
type Service struct {
	results resultRepo
	log     *slog.Logger
}

// NewService creates a new result service.
func NewService(log *slog.Logger, results resultRepo) *Service {
	return &Service{
		results: results,
		log:     log.With("service", "result"),
	}
}
