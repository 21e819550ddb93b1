package model

import (
	"time"

	"github.com/google/uuid"
)

// DepartmentModel mirrors the 'departments' table.
type DepartmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_departments_tenant_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_departments_tenant_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}

// RegionModel mirrors the 'regions' table.
type RegionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_regions_tenant_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_regions_tenant_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}
