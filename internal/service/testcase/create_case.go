package testcase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// CreateCase creates a case under a suite owned by the authenticated user.
// A suite belonging to another user is indistinguishable from a missing one.
func (s *Service) CreateCase(ctx context.Context, input CreateCaseInput) (*domain.Case, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	priority, severity, status := domain.NewCaseDefaults()
	if input.Priority != nil {
		priority = *input.Priority
	}
	if input.Severity != nil {
		severity = *input.Severity
	}
	if input.Status != nil {
		status = *input.Status
	}

	var created *domain.Case
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Ownership check and insert share the transaction so the suite
		// cannot vanish in between.
		if _, err := s.suites.GetByID(txCtx, userID, input.SuiteID); err != nil {
			return fmt.Errorf("get suite: %w", err)
		}

		var createErr error
		created, createErr = s.cases.Create(txCtx, &domain.Case{
			Title:          strings.TrimSpace(input.Title),
			Description:    input.Description,
			Steps:          input.Steps,
			ExpectedResult: input.ExpectedResult,
			Priority:       priority,
			Severity:       severity,
			Status:         status,
			SuiteID:        input.SuiteID,
		})
		if createErr != nil {
			return fmt.Errorf("create case: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "case created",
		slog.Int64("user_id", userID),
		slog.Int64("case_id", created.ID),
		slog.Int64("suite_id", input.SuiteID),
	)

	return created, nil
}
