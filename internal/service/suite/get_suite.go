package suite

import (
	"context"
	"fmt"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// GetSuite returns a single suite owned by the authenticated user.
func (s *Service) GetSuite(ctx context.Context, suiteID int64) (*domain.Suite, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	suite, err := s.suites.GetByID(ctx, userID, suiteID)
	if err != nil {
		return nil, fmt.Errorf("get suite: %w", err)
	}

	return suite, nil
}
