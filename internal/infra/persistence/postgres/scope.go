package postgres

import (
	"stallbook/internal/domain/entity"

	"gorm.io/gorm"
)

// scoped narrows a query to the tenant the scope is bound to. An
// unbound scope (super admin flows) leaves the query untouched.
func scoped(db *gorm.DB, scope entity.TenantScope) *gorm.DB {
	if tenantID, ok := scope.Tenant(); ok {
		return db.Where("tenant_id = ?", tenantID)
	}

	return db
}