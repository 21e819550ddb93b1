package repository

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for tenant persistence.
var (
	// ErrTenantNotFound is returned when a tenant is not found.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrDuplicateTenantCode is returned when the tenant code is already taken.
	ErrDuplicateTenantCode = errors.New("tenant code already exists")
)

// TenantRepository defines the standard operations for tenant persistence.
type TenantRepository interface {
	// CreateTenant persists a new tenant.
	CreateTenant(ctx context.Context, tenant *entity.Tenant) error

	// FindTenantByID retrieves a tenant by its unique ID.
	FindTenantByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindTenantByCode retrieves a tenant by its unique code.
	FindTenantByCode(ctx context.Context, code string) (*entity.Tenant, error)

	// ListTenants retrieves all tenants, newest first.
	ListTenants(ctx context.Context) ([]*entity.Tenant, error)

	// UpdateTenant modifies the tenant's name.
	UpdateTenant(ctx context.Context, tenant *entity.Tenant) error

	// UpdateTenantStatus switches the tenant between active and suspended.
	UpdateTenantStatus(ctx context.Context, id uuid.UUID, status entity.TenantStatus) error

	// CountTenants returns the total number of tenants.
	CountTenants(ctx context.Context) (int64, error)
}
