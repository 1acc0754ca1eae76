package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/autoshowroom/backend/internal/db"
	"github.com/autoshowroom/backend/internal/db/dbtest"
	"github.com/autoshowroom/backend/internal/logging"
	"github.com/autoshowroom/backend/internal/mykafka"
	"github.com/autoshowroom/backend/internal/repo"
	"github.com/autoshowroom/backend/internal/service"
)

const testOrigin = "https://showroom.example.com"

type testEnv struct {
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	gdb := dbtest.New(t)
	store := repo.New(gdb)
	events := mykafka.Nop{}

	e := New(&Deps{
		UserHandler:    &UserHTTP{Svc: &service.UserService{Repo: store, Events: events}},
		CatalogHandler: &CatalogHTTP{Svc: &service.CatalogService{Repo: store, Events: events}},
		ContactHandler: &ContactHTTP{Svc: &service.ContactService{Repo: store, Events: events}},
		Ready:          func(ctx context.Context) error { return db.Ping(ctx, gdb) },
		AllowedOrigin:  testOrigin,
		Logger:         logging.New(logging.Options{Level: "error", Output: io.Discard}),
	})

	return &testEnv{E: e, DB: gdb}
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func requireFailure(t *testing.T, rec *httptest.ResponseRecorder, code int) message {
	t.Helper()
	require.Equal(t, code, rec.Code, rec.Body.String())
	m := decode[message](t, rec)
	require.False(t, m.Success)
	require.NotEmpty(t, m.Message)
	return m
}

func (env *testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, env.DB.Model(model).Count(&n).Error)
	return n
}

