// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// CreateUser persists a new user with its role assignments.
	CreateUser(ctx context.Context, user *entity.User, roleIDs []uuid.UUID) error

	// FindUserByID retrieves a user by ID with roles and tenant loaded.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByUsername retrieves a user by login name with roles and tenant loaded.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// ListUsers retrieves the users visible within the scope, newest first.
	ListUsers(ctx context.Context, scope entity.TenantScope) ([]*entity.User, error)

	// UpdateUser modifies the user's profile fields (real name, department).
	UpdateUser(ctx context.Context, scope entity.TenantScope, user *entity.User) error

	// ReplaceUserRoles replaces the user's role assignments with the given set.
	ReplaceUserRoles(ctx context.Context, scope entity.TenantScope, userID uuid.UUID, roleIDs []uuid.UUID) error

	// SetUserActive toggles whether the user may sign in.
	SetUserActive(ctx context.Context, scope entity.TenantScope, userID uuid.UUID, active bool) error

	// UpdateUserPassword replaces the user's password hash.
	UpdateUserPassword(ctx context.Context, scope entity.TenantScope, userID uuid.UUID, passwordHash string) error

	// CountUsers returns the number of users within the scope.
	CountUsers(ctx context.Context, scope entity.TenantScope) (int64, error)
}
