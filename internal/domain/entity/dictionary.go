package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DictionaryCategory partitions dictionary entries by what they define.
type DictionaryCategory string

const (
	// DictionaryUnit defines a purchase unit, e.g. 斤 or 包.
	DictionaryUnit DictionaryCategory = "unit"
	// DictionaryExpenseType defines an expense classification, e.g. 水電.
	DictionaryExpenseType DictionaryCategory = "expense_type"
)

// IsValid checks if the DictionaryCategory is a known value.
func (c DictionaryCategory) IsValid() bool {
	switch c {
	case DictionaryUnit, DictionaryExpenseType:
		return true
	default:
		return false
	}
}

// Dictionary is a tenant-editable vocabulary entry. Units carry
// conversion metadata in Meta; expense types carry only a label.
type Dictionary struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Category  DictionaryCategory
	Code      string // Unique within (tenant, category).
	Label     string // Display label; falls back to Code when blank.
	Meta      json.RawMessage
	SortOrder int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayLabel returns the label, falling back to the code when the
// label is blank.
func (d *Dictionary) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}

	return d.Code
}
