package usecase

import (
	"context"
	"encoding/json"

	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/service"
	"stallbook/internal/domain/unit"

	"github.com/google/uuid"
)

// CategoryInput defines the data for saving an item category.
type CategoryInput struct {
	Name      string
	SortOrder int
}

// ItemInput defines the data for saving a purchasable item.
type ItemInput struct {
	Name        string
	CategoryID  *uuid.UUID
	DefaultUnit string
}

// VendorInput defines the data for saving a vendor.
type VendorInput struct {
	Name  string
	Phone string
	Note  string
}

// DictionaryInput defines the data for saving a vocabulary entry.
type DictionaryInput struct {
	Category  entity.DictionaryCategory
	Code      string
	Label     string
	Meta      json.RawMessage
	SortOrder int
}

// LocationInput defines the data for saving a selling location.
type LocationInput struct {
	Name     string
	RegionID *uuid.UUID
}

// CatalogUsecase defines the interface for tenant catalog maintenance:
// categories, items, vendors, locations and vocabularies. Saves are
// upserts keyed on the natural name or code, so resubmitting a form
// converges on one record. Writes require the write role; admin-only
// surfaces enforce admin.
type CatalogUsecase interface {
	SaveCategory(ctx context.Context, claims *service.Claims, input CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, claims *service.Claims, id uuid.UUID) error
	ListCategories(ctx context.Context, claims *service.Claims) ([]*entity.Category, error)

	SaveItem(ctx context.Context, claims *service.Claims, input ItemInput) (*entity.Item, error)
	SetItemActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error
	ListItems(ctx context.Context, claims *service.Claims, activeOnly bool) ([]*entity.Item, error)

	SaveVendor(ctx context.Context, claims *service.Claims, input VendorInput) (*entity.Vendor, error)
	SetVendorActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error
	ListVendors(ctx context.Context, claims *service.Claims, activeOnly bool) ([]*entity.Vendor, error)

	SaveLocation(ctx context.Context, claims *service.Claims, input LocationInput) (*entity.Location, error)
	SetLocationActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error
	ListLocations(ctx context.Context, claims *service.Claims, activeOnly bool) ([]*entity.Location, error)

	SaveDictionary(ctx context.Context, claims *service.Claims, input DictionaryInput) (*entity.Dictionary, error)
	SetDictionaryActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error
	ListDictionaries(ctx context.Context, claims *service.Claims, category entity.DictionaryCategory) ([]*entity.Dictionary, error)

	// Units resolves the scope's effective unit definitions: tenant
	// dictionary entries layered over the built-in defaults.
	Units(ctx context.Context, claims *service.Claims) ([]unit.Definition, error)
}
