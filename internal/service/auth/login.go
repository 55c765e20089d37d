package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

// TokenResult holds an issued bearer token.
type TokenResult struct {
	AccessToken string
	TokenType   string
}

// Login authenticates a user with email + password and issues an access
// token. Unknown email, wrong password and a deactivated account all
// return the same ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*TokenResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID))

	return &TokenResult{AccessToken: token, TokenType: "bearer"}, nil
}
