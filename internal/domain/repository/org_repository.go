package repository

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for organization persistence.
var (
	// ErrDepartmentNotFound is returned when a department does not exist
	// or lies outside the caller's tenant scope.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrRegionNotFound is returned when a region does not exist or lies
	// outside the caller's tenant scope.
	ErrRegionNotFound = errors.New("region not found")
)

// OrgRepository defines the operations for departments and regions.
type OrgRepository interface {
	// CreateDepartment persists a new department.
	CreateDepartment(ctx context.Context, department *entity.Department) error

	// ListDepartments retrieves the scope's departments ordered by name.
	ListDepartments(ctx context.Context, scope entity.TenantScope) ([]*entity.Department, error)

	// DeleteDepartment removes a department within the scope. Users
	// assigned to it keep working with no department.
	DeleteDepartment(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error

	// CreateRegion persists a new region.
	CreateRegion(ctx context.Context, region *entity.Region) error

	// ListRegions retrieves the scope's regions ordered by name.
	ListRegions(ctx context.Context, scope entity.TenantScope) ([]*entity.Region, error)

	// CountRegionLocations returns how many selling locations reference
	// the region within the scope.
	CountRegionLocations(ctx context.Context, scope entity.TenantScope, regionID uuid.UUID) (int64, error)

	// DeleteRegion removes a region within the scope. Callers check for
	// attached locations first; the delete itself does not cascade.
	DeleteRegion(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error
}
