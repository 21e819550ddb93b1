package model

import (
	"time"

	"github.com/google/uuid"
)

// RevenueModel mirrors the 'revenues' table. One row per
// (location, date); writes for the same day converge on that row.
type RevenueModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index:idx_revenues_tenant_date"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_revenues_location_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_revenues_location_date;index:idx_revenues_tenant_date"`
	Amount     float64   `gorm:"type:numeric(12,2);not null"`
	IsDayOff   bool      `gorm:"not null;default:false"`
	Note       string    `gorm:"type:text"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Location *LocationModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (RevenueModel) TableName() string {
	return "revenues"
}
