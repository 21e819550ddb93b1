package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. Names are unique within a tenant.
type LocationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_locations_tenant_name"`
	RegionID  *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_locations_tenant_name"`
	IsActive  bool       `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
