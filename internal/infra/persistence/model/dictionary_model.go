package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DictionaryModel mirrors the 'dictionaries' table. Codes are unique
// within (tenant, category). Unit entries carry conversion metadata in
// the Meta JSON column.
type DictionaryModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_dictionaries_tenant_category_code"`
	Category  string         `gorm:"type:varchar(32);not null;uniqueIndex:idx_dictionaries_tenant_category_code"`
	Code      string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_dictionaries_tenant_category_code"`
	Label     string         `gorm:"type:varchar(100)"`
	Meta      datatypes.JSON `gorm:"type:jsonb"`
	SortOrder int            `gorm:"not null;default:0"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DictionaryModel) TableName() string {
	return "dictionaries"
}
