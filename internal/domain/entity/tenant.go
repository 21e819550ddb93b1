package entity

import (
	"time"

	"github.com/google/uuid"
)

// TenantStatus is the lifecycle state of a tenant.
type TenantStatus string

const (
	// TenantActive allows the tenant's users to sign in and operate.
	TenantActive TenantStatus = "active"
	// TenantSuspended blocks every sign-in for the tenant.
	TenantSuspended TenantStatus = "suspended"
)

// IsValid checks if the TenantStatus is a known value.
func (s TenantStatus) IsValid() bool {
	switch s {
	case TenantActive, TenantSuspended:
		return true
	default:
		return false
	}
}

// Tenant is an isolated enterprise on the platform. Every business
// record carries a tenant ID and queries never cross tenants.
type Tenant struct {
	ID        uuid.UUID
	Code      string // Short unique identifier used in provisioning, e.g. "luwei-zhong".
	Name      string
	Status    TenantStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the tenant's users may sign in.
func (t *Tenant) IsActive() bool {
	return t.Status == TenantActive
}
