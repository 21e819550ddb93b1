package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "stallbook/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestError_CarriesRequestID(t *testing.T) {
	c, rec := newTestContext(t)
	deliverycontext.SetRequestID(c, "req-42")

	err := NotFound(c, "ENTRY_NOT_FOUND", "記錄不存在")
	require.NoError(t, err)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "req-42", body.RequestID)
	require.NotNil(t, body.Error)
	assert.Equal(t, "ENTRY_NOT_FOUND", body.Error.Code)
}

func TestSuccess_OmitsRequestID(t *testing.T) {
	c, rec := newTestContext(t)

	err := Success(c, http.StatusOK, map[string]string{"name": "高麗菜"}, "")
	require.NoError(t, err)

	assert.NotContains(t, rec.Body.String(), "requestId")
	assert.Contains(t, rec.Body.String(), `"message":"Success"`)
}

func TestCSV_SetsDownloadHeaders(t *testing.T) {
	c, rec := newTestContext(t)

	err := CSV(c, "entries_20260301.csv", []byte("\xEF\xBB\xBFdate,price\r\n"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="entries_20260301.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\xEF\xBB\xBFdate,price\r\n", rec.Body.String())
}
