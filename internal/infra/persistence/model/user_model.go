package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Usernames are unique within a tenant; super admin accounts carry a NULL tenant.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_tenant_username"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	RealName     string     `gorm:"type:varchar(100)"`
	IsActive     bool       `gorm:"not null;default:true"`
	IsSuperAdmin bool       `gorm:"not null;default:false"`
	TenantID     *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_users_tenant_username;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Tenant *TenantModel `gorm:"foreignKey:TenantID"`
	Roles  []RoleModel  `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
