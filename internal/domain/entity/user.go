// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. Regular accounts belong to exactly one
// tenant; super admin accounts have no tenant and manage the platform.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the account.
	Username     string     // Login identifier, unique per tenant.
	PasswordHash string     // Bcrypt hash of the login password.
	RealName     string     // Display name shown in operation logs and user lists.
	IsActive     bool       // Inactive accounts are rejected at login.
	IsSuperAdmin bool       // Platform administrator flag. Super admins carry no tenant.
	TenantID     *uuid.UUID // Owning tenant. Nil only for super admins.
	DepartmentID *uuid.UUID // Optional department within the tenant.
	Roles        RoleCodes  // Assigned role codes. Effective permission is the highest rank.
	Tenant       *Tenant    // Owning tenant snapshot, populated on login lookups.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveRole returns the highest-ranked role code assigned to the user.
func (u *User) EffectiveRole() RoleCode {
	return u.Roles.Highest()
}

// Scope returns the tenant scope the user operates under. Super admins
// get an unbound scope and can reach every tenant's records.
func (u *User) Scope() TenantScope {
	if u.IsSuperAdmin || u.TenantID == nil {
		return ScopeAll()
	}

	return ScopeTenant(*u.TenantID)
}
