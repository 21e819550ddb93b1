package entity

import (
	"time"

	"github.com/google/uuid"
)

// Revenue is one location's takings for one business day. At most one
// record exists per (location, date); writes for the same day replace
// the previous amount.
type Revenue struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	LocationID   uuid.UUID
	LocationName string // Populated on reads for display.
	Date         time.Time
	Amount       float64
	IsDayOff     bool // A day off forces Amount to zero.
	Note         string
	CreatedBy    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
