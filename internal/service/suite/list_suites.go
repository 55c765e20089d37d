package suite

import (
	"context"
	"fmt"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// ListSuites returns the authenticated user's suites in creation order.
func (s *Service) ListSuites(ctx context.Context, input ListInput) ([]domain.Suite, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	suites, err := s.suites.List(ctx, userID, input.Skip, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list suites: %w", err)
	}

	return suites, nil
}
