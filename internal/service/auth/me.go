package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/pkg/ctxutil"
)

// Me returns the authenticated user's own record.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		// The subject may have been deleted after the token was issued.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me get user: %w", err)
	}

	return user, nil
}
