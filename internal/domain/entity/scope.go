package entity

import "github.com/google/uuid"

// TenantScope restricts repository queries to one tenant's records.
// The zero value is unbound and matches every tenant; only super admin
// flows may hold an unbound scope.
type TenantScope struct {
	tenantID *uuid.UUID
}

// ScopeTenant returns a scope bound to the given tenant.
func ScopeTenant(tenantID uuid.UUID) TenantScope {
	return TenantScope{tenantID: &tenantID}
}

// ScopeAll returns an unbound scope that matches every tenant.
func ScopeAll() TenantScope {
	return TenantScope{}
}

// Bound reports whether the scope is restricted to a single tenant.
func (s TenantScope) Bound() bool {
	return s.tenantID != nil
}

// Tenant returns the bound tenant ID. The boolean is false for an
// unbound scope.
func (s TenantScope) Tenant() (uuid.UUID, bool) {
	if s.tenantID == nil {
		return uuid.Nil, false
	}

	return *s.tenantID, true
}
