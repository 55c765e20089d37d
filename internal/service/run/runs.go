package run

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// CreateRun creates a new run. The suite reference, when present, must
// point at an existing suite (any owner's).
func (s *Service) CreateRun(ctx context.Context, input CreateRunInput) (*domain.Run, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.RunStatusPending
	if input.Status != nil {
		status = *input.Status
	}

	created, err := s.runs.Create(ctx, &domain.Run{
		Name:    strings.TrimSpace(input.Name),
		Status:  status,
		SuiteID: input.SuiteID,
	})
	if err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	s.log.InfoContext(ctx, "run created",
		slog.Int64("run_id", created.ID))

	return created, nil
}

// GetRun returns a single run.
func (s *Service) GetRun(ctx context.Context, runID int64) (*domain.Run, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	run, err := s.runs.GetByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}

	return run, nil
}

// ListRuns returns runs in creation order.
func (s *Service) ListRuns(ctx context.Context, input ListInput) ([]domain.Run, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	runs, err := s.runs.List(ctx, input.Skip, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return runs, nil
}

// UpdateRun applies a partial update. Status changes are not checked
// against any transition order, only against the enum.
func (s *Service) UpdateRun(ctx context.Context, input UpdateRunInput) (*domain.Run, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.RunUpdateParams{
		Status:      input.Status,
		StartedAt:   input.StartedAt,
		CompletedAt: input.CompletedAt,
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}

	// An empty patch changes nothing; the current row is returned as-is.
	if params.IsEmpty() {
		current, err := s.runs.GetByID(ctx, input.RunID)
		if err != nil {
			return nil, fmt.Errorf("update run: %w", err)
		}
		return current, nil
	}

	updated, err := s.runs.Update(ctx, input.RunID, params)
	if err != nil {
		return nil, fmt.Errorf("update run: %w", err)
	}

	s.log.InfoContext(ctx, "run updated",
		slog.Int64("run_id", input.RunID))

	return updated, nil
}

// DeleteRun removes a run and returns its last state. Recorded results go
// with it.
func (s *Service) DeleteRun(ctx context.Context, runID int64) (*domain.Run, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	deleted, err := s.runs.Delete(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("delete run: %w", err)
	}

	s.log.InfoContext(ctx, "run deleted",
		slog.Int64("run_id", runID))

	return deleted, nil
}
