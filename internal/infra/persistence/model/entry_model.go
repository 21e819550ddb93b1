package model

import (
	"time"

	"github.com/google/uuid"
)

// EntryModel mirrors the 'entries' table. Derived columns
// (standard_weight, unit_price) are computed by the application on
// every write and never accepted from clients.
type EntryModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index:idx_entries_tenant_date"`
	Type     string    `gorm:"type:varchar(16);not null"`
	Status   string    `gorm:"type:varchar(16);not null;default:APPROVED"`
	Date     time.Time `gorm:"type:date;not null;index:idx_entries_tenant_date"`

	ItemID      *uuid.UUID `gorm:"type:uuid;index"`
	VendorID    *uuid.UUID `gorm:"type:uuid"`
	ExpenseType string     `gorm:"type:varchar(64)"`

	Quantity       float64 `gorm:"type:numeric(12,3);not null"`
	Unit           string  `gorm:"type:varchar(32)"`
	Price          float64 `gorm:"type:numeric(12,2);not null"`
	StandardWeight *float64
	UnitPrice      *float64

	Note      string     `gorm:"type:text"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Item   *ItemModel   `gorm:"foreignKey:ItemID"`
	Vendor *VendorModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "entries"
}
