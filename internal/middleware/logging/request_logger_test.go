package loggingmw

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoshowroom/backend/internal/logging"
)

func TestRequestLogger_LogsFinalStatusAndScopesLogger(t *testing.T) {
	var buf bytes.Buffer
	base := logging.New(logging.Options{Level: "info", Output: &buf})

	e := echo.New()
	e.Use(RequestLogger(base))
	e.GET("/api/products/:id", func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Info("inside")
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products/7", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inside, done map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inside))
	require.NoError(t, json.Unmarshal(lines[1], &done))

	assert.Equal(t, "rid-1", inside["request_id"])
	assert.Equal(t, "/api/products/:id", inside["path"])
	assert.Equal(t, "request completed", done["msg"])
	assert.Equal(t, "WARN", done["level"])
	assert.EqualValues(t, 404, done["status"])
}

func TestRequestLogger_ServerErrorCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	base := logging.New(logging.Options{Level: "info", Output: &buf})

	e := echo.New()
	e.Use(RequestLogger(base))
	e.POST("/api/contacts", func(c echo.Context) error {
		return errors.New("connection refused")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contacts", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var done map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &done))
	assert.Equal(t, "ERROR", done["level"])
	assert.EqualValues(t, 500, done["status"])
	assert.Equal(t, "connection refused", done["error"])
	assert.Equal(t, "POST", done["method"])
}

func TestRequestLogger_SuccessLogsSize(t *testing.T) {
	var buf bytes.Buffer
	base := logging.New(logging.Options{Level: "info", Output: &buf})

	e := echo.New()
	e.Use(RequestLogger(base))
	e.GET("/api/products", func(c echo.Context) error {
		return c.String(http.StatusOK, "[]")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var done map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &done))
	assert.Equal(t, "INFO", done["level"])
	assert.EqualValues(t, 2, done["bytes"])
}
