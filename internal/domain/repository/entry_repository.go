package repository

import (
	"context"
	"time"

	"stallbook/internal/domain/entity"
	"stallbook/internal/errors"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when an entry does not exist or lies
// outside the caller's tenant scope. The two cases are indistinguishable
// on purpose.
var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository defines the standard operations for cost entry persistence.
type EntryRepository interface {
	// CreateEntry persists a new entry.
	CreateEntry(ctx context.Context, entry *entity.Entry) error

	// FindEntryByID retrieves an entry within the scope, with item and
	// vendor names loaded.
	FindEntryByID(ctx context.Context, scope entity.TenantScope, id uuid.UUID) (*entity.Entry, error)

	// UpdateEntry replaces the mutable fields of an existing entry.
	UpdateEntry(ctx context.Context, scope entity.TenantScope, entry *entity.Entry) error

	// DeleteEntry removes an entry within the scope.
	DeleteEntry(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error

	// ListEntriesByDateRange retrieves entries with dates in [from, to],
	// newest first, with item and vendor names loaded.
	ListEntriesByDateRange(ctx context.Context, scope entity.TenantScope, from, to time.Time) ([]*entity.Entry, error)

	// CountEntries returns the number of entries within the scope.
	CountEntries(ctx context.Context, scope entity.TenantScope) (int64, error)
}
