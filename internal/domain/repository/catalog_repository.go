package repository

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrCategoryNotFound is returned when a category does not exist or
	// lies outside the caller's tenant scope.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrItemNotFound is returned when an item does not exist or lies
	// outside the caller's tenant scope.
	ErrItemNotFound = errors.New("item not found")
	// ErrVendorNotFound is returned when a vendor does not exist or lies
	// outside the caller's tenant scope.
	ErrVendorNotFound = errors.New("vendor not found")
)

// CatalogRepository defines the operations for categories, items and vendors.
// Upserts key on the tenant-unique name so repeated submissions converge
// on one record.
type CatalogRepository interface {
	// UpsertCategory inserts the category or updates sort order by (tenant, name).
	UpsertCategory(ctx context.Context, category *entity.Category) error

	// ListCategories retrieves the scope's categories ordered by sort order.
	ListCategories(ctx context.Context, scope entity.TenantScope) ([]*entity.Category, error)

	// DeleteCategory removes a category within the scope.
	DeleteCategory(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error

	// CountItemsInCategory returns how many items reference the category.
	CountItemsInCategory(ctx context.Context, scope entity.TenantScope, categoryID uuid.UUID) (int64, error)

	// UpsertItem inserts the item or updates its fields by (tenant, name).
	UpsertItem(ctx context.Context, item *entity.Item) error

	// FindItemByID retrieves an item within the scope.
	FindItemByID(ctx context.Context, scope entity.TenantScope, id uuid.UUID) (*entity.Item, error)

	// ListItems retrieves the scope's items ordered by name, with category
	// names loaded. Inactive items are included only when activeOnly is false.
	ListItems(ctx context.Context, scope entity.TenantScope, activeOnly bool) ([]*entity.Item, error)

	// SetItemActive toggles whether the item appears in pickers.
	SetItemActive(ctx context.Context, scope entity.TenantScope, id uuid.UUID, active bool) error

	// UpsertVendor inserts the vendor or updates its fields by (tenant, name).
	UpsertVendor(ctx context.Context, vendor *entity.Vendor) error

	// ListVendors retrieves the scope's vendors ordered by name.
	ListVendors(ctx context.Context, scope entity.TenantScope, activeOnly bool) ([]*entity.Vendor, error)

	// SetVendorActive toggles whether the vendor appears in pickers.
	SetVendorActive(ctx context.Context, scope entity.TenantScope, id uuid.UUID, active bool) error
}
