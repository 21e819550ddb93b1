package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntryType distinguishes the two kinds of cost records.
type EntryType string

const (
	// EntryPurchase is a goods purchase tied to an item and optionally a vendor.
	EntryPurchase EntryType = "PURCHASE"
	// EntryExpense is an operating expense classified by an expense type code.
	EntryExpense EntryType = "EXPENSE"
)

// IsValid checks if the EntryType is a known value.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryPurchase, EntryExpense:
		return true
	default:
		return false
	}
}

// EntryStatus is the review state of a cost record. Writes default to
// approved; the pending/rejected states exist for tenants that review
// their workers' records.
type EntryStatus string

const (
	// EntryPending marks a record awaiting review.
	EntryPending EntryStatus = "PENDING"
	// EntryApproved marks a record counted by reports.
	EntryApproved EntryStatus = "APPROVED"
	// EntryRejected marks a record turned down by an admin.
	EntryRejected EntryStatus = "REJECTED"
)

// IsValid checks if the EntryStatus is a known value.
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryPending, EntryApproved, EntryRejected:
		return true
	default:
		return false
	}
}

// Entry is a single cost record. Purchases carry quantity and unit;
// expenses are a bare amount classified by type. Derived fields are
// recomputed on every write and never trusted from input.
type Entry struct {
	ID       uuid.UUID
	TenantID uuid.UUID
	Type     EntryType
	Status   EntryStatus
	Date     time.Time // Business date of the cost, stored at day precision.

	ItemID      *uuid.UUID // Purchase entries only.
	ItemName    string     // Populated on reads for display; empty when the item is gone.
	VendorID    *uuid.UUID // Optional supplier reference on purchase entries.
	VendorName  string
	ExpenseType string // Expense entries only, dictionary code.

	Quantity float64
	Unit     string  // Dictionary unit code.
	Price    float64 // Total price for the whole quantity.

	// StandardWeight is the quantity converted to kilograms, nil when the
	// unit has no weight conversion. UnitPrice is price per kilogram when
	// the weight is known, otherwise price per unit quantity.
	StandardWeight *float64
	UnitPrice      *float64

	Note      string
	CreatedBy *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
