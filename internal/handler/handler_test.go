package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *server.Server {
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
	}
}

func TestNewPayload(t *testing.T) {
	first := newPayload[*model.IDPayload]()
	second := newPayload[*model.IDPayload]()

	require.NotNil(t, first)
	first.ID = 5
	assert.Zero(t, second.ID)
}

func TestResourceName(t *testing.T) {
	tests := map[string]string{
		"skills":           "skills",
		"skills_api":       "skills",
		"skills_api.php":   "skills",
		"Profile_API.php":  "profile",
		"contacts.php":     "contacts",
		"education_api.go": "education_api.go",
	}
	for raw, want := range tests {
		assert.Equal(t, want, resourceName(raw), raw)
	}
}

func TestPresent(t *testing.T) {
	assert.True(t, present("7"))
	assert.False(t, present(""))
	assert.False(t, present("0"))
	assert.False(t, present("  "))
}

func checkHealth(t *testing.T, h *HealthHandler) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
	require.NoError(t, h.CheckHealth(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestCheckHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all healthy", func(t *testing.T) {
		h := &HealthHandler{Handler: NewHandler(testServer()), dependencies: []dependency{
			{name: "database", ping: ok, required: true},
			{name: "redis", ping: ok},
		}}

		rec, body := checkHealth(t, h)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "test", body["environment"])
		checks := body["checks"].(map[string]any)
		assert.Contains(t, checks, "database")
		assert.Contains(t, checks, "redis")
	})

	t.Run("database down", func(t *testing.T) {
		h := &HealthHandler{Handler: NewHandler(testServer()), dependencies: []dependency{
			{name: "database", ping: down, required: true},
		}}

		rec, body := checkHealth(t, h)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unhealthy", body["status"])
		db := body["checks"].(map[string]any)["database"].(map[string]any)
		assert.Equal(t, "connection refused", db["error"])
	})

	t.Run("redis down is reported only", func(t *testing.T) {
		h := &HealthHandler{Handler: NewHandler(testServer()), dependencies: []dependency{
			{name: "database", ping: ok, required: true},
			{name: "redis", ping: down},
		}}

		rec, body := checkHealth(t, h)

		assert.Equal(t, http.StatusOK, rec.Code)
		redis := body["checks"].(map[string]any)["redis"].(map[string]any)
		assert.Equal(t, "unhealthy", redis["status"])
	})

	t.Run("disabled checks are skipped", func(t *testing.T) {
		s := testServer()
		s.Config.Observability.HealthChecks.Checks = []string{"redis"}
		h := &HealthHandler{Handler: NewHandler(s), dependencies: []dependency{
			{name: "database", ping: down, required: true},
		}}

		rec, body := checkHealth(t, h)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, body["checks"])
	})
}

func TestServeOpenAPIUI(t *testing.T) {
	t.Run("serves the page", func(t *testing.T) {
		h := NewOpenAPIHandler(testServer(), fstest.MapFS{
			"openapi.html": {Data: []byte("<html>docs</html>")},
		})

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), rec)
		require.NoError(t, h.ServeOpenAPIUI(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "<html>docs</html>", rec.Body.String())
	})

	t.Run("missing page", func(t *testing.T) {
		h := NewOpenAPIHandler(testServer(), fstest.MapFS{})

		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), httptest.NewRecorder())
		assert.Error(t, h.ServeOpenAPIUI(c))
	})
}
