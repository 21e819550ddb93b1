package usecase

import (
	"context"
	"time"

	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/service"

	"github.com/google/uuid"
)

// EntryInput defines the data for creating or updating a cost entry.
// Derived fields (standard weight, unit price) are never accepted from
// input; the service recomputes them on every write.
type EntryInput struct {
	Type        entity.EntryType
	Date        time.Time
	ItemID      *uuid.UUID
	VendorID    *uuid.UUID
	ExpenseType string
	Quantity    float64
	Unit        string
	Price       float64
	Note        string
}

// EntryUsecase defines the interface for cost entry operations.
// All operations require at least the write role except listing.
type EntryUsecase interface {
	// CreateEntry validates the input, derives weight and unit price, and
	// persists the entry together with its audit log.
	CreateEntry(ctx context.Context, claims *service.Claims, input EntryInput) (*entity.Entry, error)

	// UpdateEntry replaces an entry's fields and re-derives weight and
	// unit price from the new values.
	UpdateEntry(ctx context.Context, claims *service.Claims, id uuid.UUID, input EntryInput) (*entity.Entry, error)

	// DeleteEntry removes an entry and records the deletion in the audit log.
	DeleteEntry(ctx context.Context, claims *service.Claims, id uuid.UUID) error

	// SetEntryStatus moves an entry through the review workflow
	// (pending, approved, rejected). Requires the admin role; create and
	// update never touch the status.
	SetEntryStatus(ctx context.Context, claims *service.Claims, id uuid.UUID, status entity.EntryStatus) (*entity.Entry, error)

	// ListEntries retrieves entries with dates in [from, to], newest first.
	ListEntries(ctx context.Context, claims *service.Claims, from, to time.Time) ([]*entity.Entry, error)
}
