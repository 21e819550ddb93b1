package repository

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/errors"
)

// ErrRoleNotFound is returned when a role is not found.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines the operations for the platform-wide role table.
// Roles are shared definitions, not tenant data.
type RoleRepository interface {
	// EnsureRole inserts the role or updates its name and description when
	// the code already exists.
	EnsureRole(ctx context.Context, role *entity.Role) error

	// FindRoleByCode retrieves a role by its code.
	FindRoleByCode(ctx context.Context, code entity.RoleCode) (*entity.Role, error)

	// ListRoles retrieves all roles ordered by rank.
	ListRoles(ctx context.Context) ([]*entity.Role, error)
}
