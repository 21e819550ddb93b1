package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups purchasable items for pickers and reports.
type Category struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string // Unique within the tenant.
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is a purchasable good, e.g. an ingredient. Inactive items stay
// referenced by historical entries but disappear from pickers.
type Item struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	CategoryID   *uuid.UUID // Optional grouping. Nil for uncategorized items.
	CategoryName string     // Populated on list queries for display.
	Name         string     // Unique within the tenant.
	DefaultUnit  string     // Suggested unit code when recording a purchase.
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Vendor is a supplier a purchase entry can reference.
type Vendor struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string // Unique within the tenant.
	Phone     string
	Note      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location is a selling point whose daily revenue is tracked.
type Location struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	RegionID  *uuid.UUID // Optional region grouping.
	Name      string     // Unique within the tenant.
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
