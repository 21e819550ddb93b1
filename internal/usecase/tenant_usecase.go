package usecase

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/service"

	"github.com/google/uuid"
)

// ProvisionTenantInput defines the data for creating a tenant together
// with its first admin account.
type ProvisionTenantInput struct {
	Code          string
	Name          string
	AdminUsername string
	AdminPassword string
	AdminRealName string
}

// ProvisionTenantOutput returns the created tenant and its first admin.
type ProvisionTenantOutput struct {
	Tenant *entity.Tenant
	Admin  *entity.User
}

// PlatformStats summarizes platform-wide usage for the super admin
// dashboard.
type PlatformStats struct {
	TenantCount  int64
	UserCount    int64
	EntryCount   int64
	RevenueCount int64
}

// TenantUsecase defines the interface for platform-level tenant
// management. Every operation requires the super admin flag; tenant
// roles, including admin, never satisfy these checks.
type TenantUsecase interface {
	// ProvisionTenant creates the tenant, its first admin user and the
	// default vocabularies in one transaction. A failure at any step
	// leaves nothing behind.
	ProvisionTenant(ctx context.Context, claims *service.Claims, input ProvisionTenantInput) (*ProvisionTenantOutput, error)

	ListTenants(ctx context.Context, claims *service.Claims) ([]*entity.Tenant, error)
	RenameTenant(ctx context.Context, claims *service.Claims, id uuid.UUID, name string) error

	// SetTenantStatus switches a tenant between active and suspended.
	// Suspension blocks every sign-in for the tenant's users.
	SetTenantStatus(ctx context.Context, claims *service.Claims, id uuid.UUID, status entity.TenantStatus) error

	Stats(ctx context.Context, claims *service.Claims) (*PlatformStats, error)
}
