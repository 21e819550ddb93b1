package model

import (
	"time"

	"github.com/google/uuid"
)

// OperationLogModel mirrors the 'operation_logs' table. Rows are
// append-only; there is no updated_at and no delete path.
type OperationLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID   *uuid.UUID `gorm:"type:uuid;index:idx_operation_logs_tenant_created"`
	UserID     *uuid.UUID `gorm:"type:uuid"`
	UserName   string     `gorm:"type:varchar(100)"`
	Action     string     `gorm:"type:varchar(64);not null"`
	TargetType string     `gorm:"type:varchar(64)"`
	TargetID   string     `gorm:"type:varchar(64)"`
	Detail     string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"index:idx_operation_logs_tenant_created"`
}

// TableName explicitly sets the table name for GORM.
func (OperationLogModel) TableName() string {
	return "operation_logs"
}
