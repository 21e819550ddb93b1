package usecase

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/service"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Login verifies credentials and issues a token pair. Disabled
	// accounts and suspended tenants are rejected with the same care as
	// wrong passwords.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// CurrentUser resolves the claims into the up-to-date user record.
	CurrentUser(ctx context.Context, claims *service.Claims) (*entity.User, error)
}
