package testcase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// UpdateCase applies a partial update to a case whose suite the
// authenticated user owns. Fields absent from the input are left unchanged.
func (s *Service) UpdateCase(ctx context.Context, input UpdateCaseInput) (*domain.Case, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CaseUpdateParams{
		Description:    input.Description,
		Steps:          input.Steps,
		ExpectedResult: input.ExpectedResult,
		Priority:       input.Priority,
		Severity:       input.Severity,
		Status:         input.Status,
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}

	// An empty patch changes nothing and does not refresh updated_at;
	// only the ownership check runs.
	if params.IsEmpty() {
		return s.authorizeCase(ctx, userID, input.CaseID)
	}

	var updated *domain.Case
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.authorizeCase(txCtx, userID, input.CaseID); err != nil {
			return fmt.Errorf("authorize case: %w", err)
		}

		var updateErr error
		updated, updateErr = s.cases.Update(txCtx, input.CaseID, params)
		if updateErr != nil {
			return fmt.Errorf("update case: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "case updated",
		slog.Int64("user_id", userID),
		slog.Int64("case_id", input.CaseID),
	)

	return updated, nil
}
