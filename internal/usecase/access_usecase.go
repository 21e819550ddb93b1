// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/service"
)

// Authorized is the result of a successful access check: the verified
// identity and the tenant scope every repository call must run under.
type Authorized struct {
	Identity *entity.User
	Scope    entity.TenantScope
}

// Can reports whether the identity's effective role satisfies the
// minimum role code. Super admins satisfy every check.
func (a *Authorized) Can(minimum entity.RoleCode) bool {
	if a.Identity == nil {
		return false
	}
	if a.Identity.IsSuperAdmin {
		return true
	}

	return a.Identity.EffectiveRole().AtLeast(minimum)
}

// AccessUsecase resolves token claims into an authorized identity.
// Every protected operation starts here; the check re-reads the user so
// deactivation and role changes take effect before token expiry.
type AccessUsecase interface {
	// EnsureRole verifies the claims and requires at least the given role.
	EnsureRole(ctx context.Context, claims *service.Claims, minimum entity.RoleCode) (*Authorized, error)

	// RequireSuperAdmin verifies the claims and requires the super admin flag.
	RequireSuperAdmin(ctx context.Context, claims *service.Claims) (*Authorized, error)
}
