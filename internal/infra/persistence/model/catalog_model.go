package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. Names are unique within a tenant.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_tenant_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_tenant_name"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ItemModel mirrors the 'items' table. Names are unique within a tenant.
// Inactive items stay referenced by historical entries.
type ItemModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_items_tenant_name"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_items_tenant_name"`
	DefaultUnit string     `gorm:"type:varchar(32)"`
	IsActive    bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// VendorModel mirrors the 'vendors' table. Names are unique within a tenant.
type VendorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vendors_tenant_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_vendors_tenant_name"`
	Phone     string    `gorm:"type:varchar(32)"`
	Note      string    `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
