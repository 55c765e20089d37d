package result

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// CreateResult records the outcome of one case within one run. Both
// references must exist; a missing run or case surfaces as not found.
func (s *Service) CreateResult(ctx context.Context, input CreateResultInput) (*domain.Result, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.results.Create(ctx, &domain.Result{
		RunID:      input.RunID,
		CaseID:     input.CaseID,
		Status:     input.Status,
		Notes:      input.Notes,
		DurationMS: input.DurationMS,
	})
	if err != nil {
		return nil, fmt.Errorf("create result: %w", err)
	}

	s.log.InfoContext(ctx, "result recorded",
		slog.Int64("result_id", created.ID),
		slog.Int64("run_id", input.RunID),
		slog.Int64("case_id", input.CaseID),
	)

	return created, nil
}

// GetResult returns a single result.
func (s *Service) GetResult(ctx context.Context, resultID int64) (*domain.Result, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	res, err := s.results.GetByID(ctx, resultID)
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}

	return res, nil
}

// ListResults returns one run's results in creation order.
func (s *Service) ListResults(ctx context.Context, input ListResultsInput) ([]domain.Result, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	results, err := s.results.ListByRun(ctx, input.RunID, input.Skip, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	return results, nil
}

// UpdateResult applies a partial update to a result.
func (s *Service) UpdateResult(ctx context.Context, input UpdateResultInput) (*domain.Result, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ResultUpdateParams{
		Status:     input.Status,
		Notes:      input.Notes,
		DurationMS: input.DurationMS,
	}

	// An empty patch changes nothing; the current row is returned as-is.
	if params.IsEmpty() {
		current, err := s.results.GetByID(ctx, input.ResultID)
		if err != nil {
			return nil, fmt.Errorf("update result: %w", err)
		}
		return current, nil
	}

	updated, err := s.results.Update(ctx, input.ResultID, params)
	if err != nil {
		return nil, fmt.Errorf("update result: %w", err)
	}

	s.log.InfoContext(ctx, "result updated",
		slog.Int64("result_id", input.ResultID))

	return updated, nil
}

// DeleteResult removes a result and returns its last state.
func (s *Service) DeleteResult(ctx context.Context, resultID int64) (*domain.Result, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	deleted, err := s.results.Delete(ctx, resultID)
	if err != nil {
		return nil, fmt.Errorf("delete result: %w", err)
	}

	s.log.InfoContext(ctx, "result deleted",
		slog.Int64("result_id", resultID))

	return deleted, nil
}
