package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

// ValidateToken verifies a bearer token and resolves it to an existing,
// active user. Every failure path collapses to ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (int64, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrUnauthorized
		}
		return 0, fmt.Errorf("auth.ValidateToken get user: %w", err)
	}

	if !user.IsActive {
		return 0, domain.ErrUnauthorized
	}

	return user.ID, nil
}
