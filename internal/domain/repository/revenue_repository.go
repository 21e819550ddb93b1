package repository

import (
	"context"
	"time"

	"stallbook/internal/domain/entity"
	"stallbook/internal/errors"

	"github.com/google/uuid"
)

// ErrRevenueNotFound is returned when a revenue record does not exist or
// lies outside the caller's tenant scope.
var ErrRevenueNotFound = errors.New("revenue not found")

// RevenueRepository defines the standard operations for daily revenue persistence.
type RevenueRepository interface {
	// UpsertRevenue inserts the record, or replaces amount, day-off flag
	// and note when a record for the same (location, date) already exists.
	UpsertRevenue(ctx context.Context, revenue *entity.Revenue) error

	// FindRevenueByID retrieves a revenue record within the scope, with
	// the location name loaded.
	FindRevenueByID(ctx context.Context, scope entity.TenantScope, id uuid.UUID) (*entity.Revenue, error)

	// UpdateRevenue replaces the mutable fields of an existing record.
	UpdateRevenue(ctx context.Context, scope entity.TenantScope, revenue *entity.Revenue) error

	// DeleteRevenue removes a revenue record within the scope.
	DeleteRevenue(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error

	// ListRevenuesByDateRange retrieves records with dates in [from, to],
	// newest first, with location names loaded.
	ListRevenuesByDateRange(ctx context.Context, scope entity.TenantScope, from, to time.Time) ([]*entity.Revenue, error)

	// CountRevenues returns the number of records within the scope.
	CountRevenues(ctx context.Context, scope entity.TenantScope) (int64, error)
}
