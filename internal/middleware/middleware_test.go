package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Errors  []errs.FieldError `json:"errors"`
	Data    any               `json:"data"`
}

func renderError(t *testing.T, method string, err error) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, "/api/v1/skills/1", nil), rec)

	NewGlobalMiddlewares(&server.Server{}).GlobalErrorHandler(err, c)

	var body envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestGlobalErrorHandler(t *testing.T) {
	code := "SKILL_INVALID"
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{
			name:        "override message is shown",
			err:         errs.NewNotFoundError("Skill not found", true, nil),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Skill not found",
			wantCode:    "NOT_FOUND",
		},
		{
			name:        "non override message is replaced",
			err:         errs.NewNotFoundError("row 7 missing in skills", false, nil),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
			wantCode:    "NOT_FOUND",
		},
		{
			name:        "custom code",
			err:         errs.NewBadRequestError("Proficiency out of range", true, &code, nil),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Proficiency out of range",
			wantCode:    "SKILL_INVALID",
		},
		{
			name:        "unknown route",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Route not found",
			wantCode:    "NOT_FOUND",
		},
		{
			name:        "wrong method",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantMessage: "Invalid request method",
			wantCode:    "METHOD_NOT_ALLOWED",
		},
		{
			name:        "database error",
			err:         &pgconn.PgError{Code: "23503", TableName: "projects", ConstraintName: "projects_profile_id_fkey"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "The referenced profile does not exist",
			wantCode:    "PROFILE_NOT_FOUND",
		},
		{
			name:        "unexpected error",
			err:         errors.New("pool closed"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
			wantCode:    "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := renderError(t, http.MethodGet, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Nil(t, body.Data)
		})
	}
}

func TestGlobalErrorHandler_FieldErrors(t *testing.T) {
	err := errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
		{Field: "email", Error: "must be a valid email address"},
	})

	rec, body := renderError(t, http.MethodPost, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "email", body.Errors[0].Field)
}

func TestGlobalErrorHandler_HeadHasNoBody(t *testing.T) {
	rec, _ := renderError(t, http.MethodHead, errs.NewNotFoundError("Skill not found", true, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))

		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestEnhanceContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ce := NewContextEnhancer(&server.Server{Logger: &base})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(RequestIDKey, "req-42")

	handler := ce.EnhanceContext()(func(c echo.Context) error {
		GetLogger(c).Info().Msg("from echo context")
		zerolog.Ctx(c.Request().Context()).Info().Msg("from request context")
		return nil
	})
	require.NoError(t, handler(c))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "req-42", entry["request_id"])
		assert.Equal(t, http.MethodGet, entry["method"])
	}
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}
