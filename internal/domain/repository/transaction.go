package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewTenantRepository returns a TenantRepository instance bound to the current transaction.
	NewTenantRepository() TenantRepository

	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewRoleRepository returns a RoleRepository instance bound to the current transaction.
	NewRoleRepository() RoleRepository

	// NewEntryRepository returns an EntryRepository instance bound to the current transaction.
	NewEntryRepository() EntryRepository

	// NewRevenueRepository returns a RevenueRepository instance bound to the current transaction.
	NewRevenueRepository() RevenueRepository

	// NewCatalogRepository returns a CatalogRepository instance bound to the current transaction.
	NewCatalogRepository() CatalogRepository

	// NewDictionaryRepository returns a DictionaryRepository instance bound to the current transaction.
	NewDictionaryRepository() DictionaryRepository

	// NewLocationRepository returns a LocationRepository instance bound to the current transaction.
	NewLocationRepository() LocationRepository

	// NewOrgRepository returns an OrgRepository instance bound to the current transaction.
	NewOrgRepository() OrgRepository

	// NewOperationLogRepository returns an OperationLogRepository instance bound to the current transaction.
	NewOperationLogRepository() OperationLogRepository
}
