package model

import (
	"time"

	"github.com/google/uuid"
)

// TenantModel mirrors the 'tenants' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type TenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code      string    `gorm:"type:varchar(64);unique;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}
