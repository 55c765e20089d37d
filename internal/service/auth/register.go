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

// Register creates a new active user with email + password credentials.
// Returns ErrAlreadyExists if the email is already taken; the duplicate
// check runs before any hashing work.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("auth.Register get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Email uniqueness is also enforced by a DB constraint, which covers
	// the race between the lookup above and this insert.
	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", user.ID))

	return user, nil
}
