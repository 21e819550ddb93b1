package entity

import (
	"time"

	"github.com/google/uuid"
)

// OperationLog is an append-only audit record of a mutating action.
// Logs are never updated or deleted.
type OperationLog struct {
	ID         uuid.UUID
	TenantID   *uuid.UUID // Nil for platform-level actions such as tenant provisioning.
	UserID     *uuid.UUID
	UserName   string // Snapshot of the actor's name at write time.
	Action     string // e.g. "entry.create".
	TargetType string
	TargetID   string
	Detail     string
	CreatedAt  time.Time
}
