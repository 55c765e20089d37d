package testcase

import (
	"context"
	"fmt"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// GetCase returns a single case if the authenticated user owns its suite.
func (s *Service) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.authorizeCase(ctx, userID, caseID)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}

	return c, nil
}
