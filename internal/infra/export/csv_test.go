package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	t.Parallel()

	data, err := CSV([][]string{
		{"日期", "金額", "備註"},
		{"2026-03-01", "120", `含 "特殊" 符號, 與逗號`},
	})
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "\uFEFF"), "starts with a UTF-8 BOM")
	assert.Contains(t, text, "\r\n", "uses CRLF line endings")
	assert.Contains(t, text, `"含 ""特殊"" 符號, 與逗號"`, "quotes are doubled inside quoted fields")
}

func TestCSVEmpty(t *testing.T) {
	t.Parallel()

	data, err := CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "\uFEFF", string(data))
}
