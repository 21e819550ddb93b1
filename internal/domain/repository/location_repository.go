package repository

import (
	"context"

	"stallbook/internal/domain/entity"
	"stallbook/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a location does not exist or
// lies outside the caller's tenant scope.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the operations for selling locations.
type LocationRepository interface {
	// UpsertLocation inserts the location or updates its fields by (tenant, name).
	UpsertLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location within the scope.
	FindLocationByID(ctx context.Context, scope entity.TenantScope, id uuid.UUID) (*entity.Location, error)

	// ListLocations retrieves the scope's locations ordered by name.
	ListLocations(ctx context.Context, scope entity.TenantScope, activeOnly bool) ([]*entity.Location, error)

	// SetLocationActive toggles whether the location appears in pickers.
	SetLocationActive(ctx context.Context, scope entity.TenantScope, id uuid.UUID, active bool) error
}
