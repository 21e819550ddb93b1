package usecase

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/service"

	"github.com/google/uuid"
)

// CreateUserInput defines the data for an admin creating a tenant user.
type CreateUserInput struct {
	Username     string
	Password     string
	RealName     string
	Roles        []entity.RoleCode
	DepartmentID *uuid.UUID
}

// UpdateUserInput defines the mutable profile fields of a tenant user.
type UpdateUserInput struct {
	RealName     string
	DepartmentID *uuid.UUID
}

// AdminUsecase defines the interface for tenant administration. Every
// operation requires the admin role within the caller's own tenant.
type AdminUsecase interface {
	ListUsers(ctx context.Context, claims *service.Claims) ([]*entity.User, error)
	CreateUser(ctx context.Context, claims *service.Claims, input CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, claims *service.Claims, id uuid.UUID, input UpdateUserInput) error

	// ReplaceUserRoles swaps the user's role assignments. The effective
	// permission becomes the highest rank of the new set.
	ReplaceUserRoles(ctx context.Context, claims *service.Claims, id uuid.UUID, roles []entity.RoleCode) error

	SetUserActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error
	ResetPassword(ctx context.Context, claims *service.Claims, id uuid.UUID, newPassword string) error

	CreateDepartment(ctx context.Context, claims *service.Claims, name string) (*entity.Department, error)
	ListDepartments(ctx context.Context, claims *service.Claims) ([]*entity.Department, error)
	DeleteDepartment(ctx context.Context, claims *service.Claims, id uuid.UUID) error

	CreateRegion(ctx context.Context, claims *service.Claims, name string) (*entity.Region, error)
	ListRegions(ctx context.Context, claims *service.Claims) ([]*entity.Region, error)

	// DeleteRegion removes a region with no attached selling locations.
	DeleteRegion(ctx context.Context, claims *service.Claims, id uuid.UUID) error

	// ListOperationLogs returns the tenant's newest audit records,
	// capped at 100.
	ListOperationLogs(ctx context.Context, claims *service.Claims) ([]*entity.OperationLog, error)
}
