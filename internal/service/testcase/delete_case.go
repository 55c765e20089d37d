package testcase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// DeleteCase removes a case whose suite the authenticated user owns and
// returns its last state. Results recorded against the case go with it.
func (s *Service) DeleteCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var deleted *domain.Case
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.authorizeCase(txCtx, userID, caseID); err != nil {
			return fmt.Errorf("authorize case: %w", err)
		}

		var deleteErr error
		deleted, deleteErr = s.cases.Delete(txCtx, caseID)
		if deleteErr != nil {
			return fmt.Errorf("delete case: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "case deleted",
		slog.Int64("user_id", userID),
		slog.Int64("case_id", caseID),
	)

	return deleted, nil
}
