// Package run implements test-run management.
//
// Runs are visible to every authenticated user; there is no ownership
// scoping on this resource.
package run

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

type runRepo interface {
	Create(ctx context.Context, run *domain.Run) (*domain.Run, error)
	GetByID(ctx context.Context, runID int64) (*domain.Run, error)
	List(ctx context.Context, skip, limit int) ([]domain.Run, error)
	Update(ctx context.Context, runID int64, params domain.RunUpdateParams) (*domain.Run, error)
	Delete(ctx context.Context, runID int64) (*domain.Run, error)
}

// Service provides test-run management operations.
type Service struct {
	runs runRepo
	log  *slog.Logger
}

// NewService creates a new run service.
func NewService(log *slog.Logger, runs runRepo) *Service {
	return &Service{
		runs: runs,
		log:  log.With("service", "run"),
	}
}
