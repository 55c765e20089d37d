// Package auth implements registration, login and token validation.
package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/qatrack-backend/internal/config"
	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64) (string, error)
	ValidateAccessToken(token string) (int64, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(log *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   log.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}
