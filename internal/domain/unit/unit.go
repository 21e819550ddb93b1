// Package unit defines purchase unit semantics: weight conversion to
// kilograms, display labels, and the built-in unit vocabulary seeded
// for new tenants. Tenants override the vocabulary through dictionary
// entries; these functions only interpret definitions, they never hit
// storage.
package unit

import (
	"encoding/json"

	"stallbook/internal/domain/entity"
)

// Definition describes one purchase unit. Weight units carry a ToKg
// factor; count units (bags, boxes) have IsWeight false and no factor.
type Definition struct {
	Code     string
	Name     string
	ToKg     float64
	IsWeight bool
}

// Meta is the JSON payload stored in a unit dictionary entry.
type Meta struct {
	ToKg     *float64 `json:"toKg,omitempty"`
	IsWeight *bool    `json:"isWeight,omitempty"`
}

// Defaults is the built-in vocabulary seeded for every new tenant.
// 臺斤 converts at 0.6 kg.
func Defaults() []Definition {
	return []Definition{
		{Code: "kg", Name: "公斤", ToKg: 1, IsWeight: true},
		{Code: "catty", Name: "臺斤", ToKg: 0.6, IsWeight: true},
		{Code: "bundle", Name: "捆"},
		{Code: "bag", Name: "袋"},
		{Code: "basket", Name: "籃"},
		{Code: "pack", Name: "包"},
		{Code: "strip", Name: "條"},
		{Code: "box", Name: "箱"},
		{Code: "bucket", Name: "桶"},
	}
}

// ParseMeta decodes a dictionary meta payload. Malformed or empty
// payloads yield an empty Meta rather than an error so a broken
// dictionary row degrades to a count unit instead of failing writes.
func ParseMeta(raw json.RawMessage) Meta {
	if len(raw) == 0 {
		return Meta{}
	}

	var meta Meta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Meta{}
	}

	return meta
}

// FromDictionary builds a Definition from a tenant dictionary entry.
func FromDictionary(d *entity.Dictionary) Definition {
	meta := ParseMeta(d.Meta)
	def := Definition{
		Code: d.Code,
		Name: d.DisplayLabel(),
	}
	if meta.IsWeight != nil {
		def.IsWeight = *meta.IsWeight
	}
	if meta.ToKg != nil {
		def.ToKg = *meta.ToKg
	}

	return def
}

// Find returns the definition with the given code, searching the given
// definitions first and the built-in defaults second.
func Find(code string, defs []Definition) (Definition, bool) {
	for _, d := range defs {
		if d.Code == code {
			return d, true
		}
	}
	for _, d := range Defaults() {
		if d.Code == code {
			return d, true
		}
	}

	return Definition{}, false
}

// Label returns the display name for a unit code, falling back to the
// code itself when the unit is unknown.
func Label(code string, defs []Definition) string {
	if d, ok := Find(code, defs); ok && d.Name != "" {
		return d.Name
	}

	return code
}

// ConvertToKg converts a quantity to kilograms. It returns nil for
// unknown units and for count units: an unconvertible quantity is a
// valid state, not an error, and callers store the nil as-is.
func ConvertToKg(quantity float64, code string, defs []Definition) *float64 {
	d, ok := Find(code, defs)
	if !ok || !d.IsWeight || d.ToKg == 0 {
		return nil
	}

	kg := quantity * d.ToKg

	return &kg
}
