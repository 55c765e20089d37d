package suite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// UpdateSuite applies a partial update to a suite owned by the authenticated
// user. Fields absent from the input are left unchanged.
func (s *Service) UpdateSuite(ctx context.Context, input UpdateSuiteInput) (*domain.Suite, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.SuiteUpdateParams{}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}
	if input.Description != nil {
		params.Description = input.Description
	}

	// An empty patch changes nothing and does not refresh updated_at;
	// the current row is returned as-is.
	if params.IsEmpty() {
		current, err := s.suites.GetByID(ctx, userID, input.SuiteID)
		if err != nil {
			return nil, fmt.Errorf("update suite: %w", err)
		}
		return current, nil
	}

	updated, err := s.suites.Update(ctx, userID, input.SuiteID, params)
	if err != nil {
		return nil, fmt.Errorf("update suite: %w", err)
	}

	s.log.InfoContext(ctx, "suite updated",
		slog.Int64("user_id", userID),
		slog.Int64("suite_id", input.SuiteID),
	)

	return updated, nil
}
