package usecase

import (
	"context"
	"time"

	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/service"

	"github.com/google/uuid"
)

// RevenueInput defines the data for recording a location's daily takings.
type RevenueInput struct {
	LocationID uuid.UUID
	Date       time.Time
	Amount     float64
	IsDayOff   bool
	Note       string
}

// RevenueUsecase defines the interface for daily revenue operations.
type RevenueUsecase interface {
	// RecordRevenue writes the day's takings for a location. Submitting
	// the same (location, date) again replaces the previous record. A day
	// off forces the amount to zero.
	RecordRevenue(ctx context.Context, claims *service.Claims, input RevenueInput) (*entity.Revenue, error)

	// UpdateRevenue edits an existing record by ID.
	UpdateRevenue(ctx context.Context, claims *service.Claims, id uuid.UUID, input RevenueInput) (*entity.Revenue, error)

	// DeleteRevenue removes a record and logs the deletion.
	DeleteRevenue(ctx context.Context, claims *service.Claims, id uuid.UUID) error

	// ListRevenues retrieves records with dates in [from, to], newest first.
	ListRevenues(ctx context.Context, claims *service.Claims, from, to time.Time) ([]*entity.Revenue, error)
}
