package testcase

import (
	"context"
	"fmt"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// ListCases returns the cases of one suite owned by the authenticated user,
// in creation order.
func (s *Service) ListCases(ctx context.Context, input ListCasesInput) ([]domain.Case, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.suites.GetByID(ctx, userID, input.SuiteID); err != nil {
		return nil, fmt.Errorf("get suite: %w", err)
	}

	cases, err := s.cases.ListBySuite(ctx, input.SuiteID, input.Skip, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	return cases, nil
}
