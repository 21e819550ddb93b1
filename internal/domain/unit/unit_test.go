package unit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stallbook/internal/domain/entity"
)

func TestConvertToKg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		quantity float64
		code     string
		want     *float64
	}{
		{name: "kg is identity", quantity: 2.5, code: "kg", want: ptr(2.5)},
		{name: "catty converts at 0.6", quantity: 10, code: "catty", want: ptr(6.0)},
		{name: "count unit yields nil", quantity: 3, code: "bag", want: nil},
		{name: "unknown unit yields nil", quantity: 3, code: "carton", want: nil},
		{name: "zero quantity still converts", quantity: 0, code: "kg", want: ptr(0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertToKg(tt.quantity, tt.code, nil)
			if tt.want == nil {
				assert.Nil(t, got)

				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestConvertToKgPrefersTenantDefinitions(t *testing.T) {
	t.Parallel()

	// A tenant may redefine a built-in code with its own factor.
	defs := []Definition{{Code: "catty", Name: "斤", ToKg: 0.5, IsWeight: true}}

	got := ConvertToKg(10, "catty", defs)
	require.NotNil(t, got)
	assert.InDelta(t, 5.0, *got, 1e-9)
}

func TestConvertToKgWeightWithoutFactor(t *testing.T) {
	t.Parallel()

	defs := []Definition{{Code: "lump", Name: "塊", IsWeight: true}}

	assert.Nil(t, ConvertToKg(4, "lump", defs))
}

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "公斤", Label("kg", nil))
	assert.Equal(t, "袋", Label("bag", nil))
	assert.Equal(t, "carton", Label("carton", nil), "unknown code falls back to itself")

	defs := []Definition{{Code: "kg", Name: "公斤(特)"}}
	assert.Equal(t, "公斤(特)", Label("kg", defs), "tenant definition wins over defaults")
}

func TestParseMeta(t *testing.T) {
	t.Parallel()

	meta := ParseMeta(json.RawMessage(`{"toKg":0.6,"isWeight":true}`))
	require.NotNil(t, meta.ToKg)
	require.NotNil(t, meta.IsWeight)
	assert.InDelta(t, 0.6, *meta.ToKg, 1e-9)
	assert.True(t, *meta.IsWeight)

	assert.Equal(t, Meta{}, ParseMeta(nil))
	assert.Equal(t, Meta{}, ParseMeta(json.RawMessage(`not json`)))
	assert.Equal(t, Meta{}, ParseMeta(json.RawMessage(`{"toKg":"oops"}`)), "wrong types are dropped")
}

func TestFromDictionary(t *testing.T) {
	t.Parallel()

	def := FromDictionary(&entity.Dictionary{
		Code:  "catty",
		Label: "臺斤",
		Meta:  json.RawMessage(`{"toKg":0.6,"isWeight":true}`),
	})

	assert.Equal(t, "catty", def.Code)
	assert.Equal(t, "臺斤", def.Name)
	assert.True(t, def.IsWeight)
	assert.InDelta(t, 0.6, def.ToKg, 1e-9)

	// Blank label falls back to the code.
	def = FromDictionary(&entity.Dictionary{Code: "bag"})
	assert.Equal(t, "bag", def.Name)
	assert.False(t, def.IsWeight)
}

func ptr(v float64) *float64 {
	return &v
}
