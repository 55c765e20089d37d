package suite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// CreateSuite creates a new suite owned by the authenticated user.
func (s *Service) CreateSuite(ctx context.Context, input CreateSuiteInput) (*domain.Suite, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.suites.Create(ctx, userID, &domain.Suite{
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create suite: %w", err)
	}

	s.log.InfoContext(ctx, "suite created",
		slog.Int64("user_id", userID),
		slog.Int64("suite_id", created.ID),
	)

	return created, nil
}
