package repository

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/errors"

	"github.com/google/uuid"
)

// ErrDictionaryNotFound is returned when a dictionary entry does not
// exist or lies outside the caller's tenant scope.
var ErrDictionaryNotFound = errors.New("dictionary entry not found")

// DictionaryRepository defines the operations for tenant vocabularies
// (units and expense types).
type DictionaryRepository interface {
	// UpsertDictionary inserts the entry or updates label, meta and sort
	// order by (tenant, category, code).
	UpsertDictionary(ctx context.Context, entry *entity.Dictionary) error

	// FindDictionary retrieves one entry by category and code within the scope.
	FindDictionary(ctx context.Context, scope entity.TenantScope, category entity.DictionaryCategory, code string) (*entity.Dictionary, error)

	// ListDictionaries retrieves the scope's entries for one category
	// ordered by sort order.
	ListDictionaries(ctx context.Context, scope entity.TenantScope, category entity.DictionaryCategory) ([]*entity.Dictionary, error)

	// SetDictionaryActive toggles whether the entry appears in pickers.
	SetDictionaryActive(ctx context.Context, scope entity.TenantScope, id uuid.UUID, active bool) error
}
