package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	e := echo.New()
	e.GET("/healthz", Health)
	rec := serve(e, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestReady(t *testing.T) {
	e := echo.New()
	down := true
	e.GET("/readyz", Ready(pingFunc(func(context.Context) error {
		if down {
			return errors.New("dial tcp: refused")
		}
		return nil
	})))

	assert.Equal(t, http.StatusServiceUnavailable, serve(e, "/readyz").Code)
	down = false
	assert.Equal(t, http.StatusOK, serve(e, "/readyz").Code)
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")
	require.NoError(t, os.WriteFile(path, []byte("<h1>waitlist</h1>"), 0o644))

	e := echo.New()
	e.GET("/report.html", Report(path))
	e.GET("/missing.html", Report(filepath.Join(dir, "nope.html")))

	rec := serve(e, "/report.html")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>waitlist</h1>")

	rec = serve(e, "/missing.html")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"results":"report not found"}`, rec.Body.String())
}
