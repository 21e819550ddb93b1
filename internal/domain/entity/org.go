package entity

import (
	"time"

	"github.com/google/uuid"
)

// Department is an organizational unit users can be assigned to.
type Department struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string // Unique within the tenant.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Region groups selling locations geographically.
type Region struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string // Unique within the tenant.
	CreatedAt time.Time
	UpdatedAt time.Time
}
