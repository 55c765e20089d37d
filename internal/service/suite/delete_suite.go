package suite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// DeleteSuite removes a suite owned by the authenticated user and returns
// its last state. Contained cases and their results are removed with it;
// runs that referenced the suite survive with the link cleared.
func (s *Service) DeleteSuite(ctx context.Context, suiteID int64) (*domain.Suite, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	deleted, err := s.suites.Delete(ctx, userID, suiteID)
	if err != nil {
		return nil, fmt.Errorf("delete suite: %w", err)
	}

	s.log.InfoContext(ctx, "suite deleted",
		slog.Int64("user_id", userID),
		slog.Int64("suite_id", suiteID),
		slog.String("name", deleted.Name),
	)

	return deleted, nil
}
